package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"property-listings/internal/user"
	repo "property-listings/internal/user/repository"
)

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func docToUser(d userDoc) user.User {
	return user.User{
		ID:           d.ID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// CreateUser inserts a new User document.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	doc := userDoc{
		ID:           r.newID(),
		Username:     opt.Username,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    r.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return docToUser(doc), nil
}

// GetOneUser looks a user up by ID or email.
// Returns zero-value User when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	filter := bson.M{"_id": opt.ID}
	if opt.ID == "" {
		filter = bson.M{"email": opt.Email}
	}

	var doc userDoc
	err := r.users.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return docToUser(doc), nil
}
