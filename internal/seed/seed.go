package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"property-listings/internal/listing"
	"property-listings/internal/model"
	"property-listings/internal/user"
	"property-listings/pkg/log"
)

// File is the content of a seed YAML file. Listings reference their owner
// by email.
type File struct {
	Users    []User    `yaml:"users"`
	Listings []Listing `yaml:"listings"`
}

type User struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Listing struct {
	Owner       string  `yaml:"owner"`
	Title       string  `yaml:"title"`
	Location    string  `yaml:"location"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Status      string  `yaml:"status"`
}

// Result summarises what Apply did.
type Result struct {
	Users    int
	Listings int
	Skipped  bool
}

// Load reads a seed file. A missing file yields an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("seed: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	return f, nil
}

// Apply creates the seed users and listings through the use cases, so every
// record goes through the normal validation. It does nothing when listings
// already exist unless force is set. Users that already exist are signed in
// with the seed password instead.
func Apply(ctx context.Context, f File, users user.UseCase, listings listing.UseCase, force bool, l log.Logger) (Result, error) {
	var res Result
	if len(f.Users) == 0 && len(f.Listings) == 0 {
		return res, nil
	}
	if err := f.Validate(); err != nil {
		return res, err
	}

	if !force {
		existing, err := listings.Search(ctx, listing.SearchInput{Limit: 1})
		if err != nil {
			return res, fmt.Errorf("seed: check listings: %w", err)
		}
		if existing.Total > 0 {
			l.Infof(ctx, "seed.Apply: %d listings present, skipping seed", existing.Total)
			res.Skipped = true
			return res, nil
		}
	}

	owners := make(map[string]string, len(f.Users)) // normalised email -> user id
	for _, u := range f.Users {
		id, created, err := ensureUser(ctx, users, u)
		if err != nil {
			return res, err
		}
		owners[emailKey(u.Email)] = id
		if created {
			res.Users++
		}
	}

	for i, item := range f.Listings {
		ownerID := owners[emailKey(item.Owner)]
		_, err := listings.Create(ctx, model.Scope{UserID: ownerID}, listing.CreateListingInput{
			Title:       item.Title,
			Location:    item.Location,
			Description: item.Description,
			Price:       item.Price,
			Status:      item.Status,
		})
		if err != nil {
			return res, fmt.Errorf("seed: listing %d (%q): %w", i, item.Title, err)
		}
		res.Listings++
	}

	l.Infof(ctx, "seed.Apply: created %d users and %d listings", res.Users, res.Listings)
	return res, nil
}

func ensureUser(ctx context.Context, users user.UseCase, u User) (string, bool, error) {
	out, err := users.Register(ctx, user.RegisterInput{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	})
	if err == nil {
		return out.User.ID, true, nil
	}
	if !errors.Is(err, user.ErrEmailTaken) {
		return "", false, fmt.Errorf("seed: user %q: %w", u.Email, err)
	}

	out, err = users.Login(ctx, user.LoginInput{Email: u.Email, Password: u.Password})
	if err != nil {
		return "", false, fmt.Errorf("seed: user %q exists with another password: %w", u.Email, err)
	}
	return out.User.ID, false, nil
}

// Validate checks every listing against the rules the use case enforces and
// resolves every owner, so a bad file is rejected before anything is written.
func (f File) Validate() error {
	known := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		known[emailKey(u.Email)] = true
	}

	for i, item := range f.Listings {
		var err error
		switch {
		case !known[emailKey(item.Owner)]:
			err = fmt.Errorf("unknown owner %q", item.Owner)
		case strings.TrimSpace(item.Title) == "":
			err = listing.ErrInvalidTitle
		case strings.TrimSpace(item.Location) == "":
			err = listing.ErrInvalidLocation
		case !listing.ValidPrice(item.Price):
			err = listing.ErrInvalidPrice
		case strings.TrimSpace(item.Status) != "":
			if _, ok := listing.ParseStatus(item.Status); !ok {
				err = listing.ErrInvalidStatus
			}
		}
		if err != nil {
			return fmt.Errorf("seed: listing %d (%q): %w", i, item.Title, err)
		}
	}
	return nil
}

// emailKey matches the normalisation applied by user registration.
func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
