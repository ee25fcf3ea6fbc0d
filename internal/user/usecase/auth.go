package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"property-listings/internal/model"
	"property-listings/internal/user"
	repo "property-listings/internal/user/repository"
)

// Register creates an account and signs the new user in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return user.AuthOutput{}, user.ErrInvalidUsername
	}
	email := normalizeEmail(input.Email)
	if !emailPattern.MatchString(email) {
		return user.AuthOutput{}, user.ErrInvalidEmail
	}
	if input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return user.AuthOutput{}, user.ErrPasswordTooLong
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	uc.registerMu.Lock()
	defer uc.registerMu.Unlock()

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.issue(ctx, u)
}

// Login checks the credentials and returns a session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	return uc.issue(ctx, u)
}

// Me returns the account of the authenticated caller.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.MeOutput, error) {
	if !sc.IsAuthenticated() {
		return user.MeOutput{}, user.ErrUnauthenticated
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return user.MeOutput{}, err
	}
	if u.ID == "" {
		return user.MeOutput{}, user.ErrUserNotFound
	}
	return user.MeOutput{User: u}, nil
}

func (uc *implUseCase) issue(ctx context.Context, u user.User) (user.AuthOutput, error) {
	token, err := uc.jwtManager.CreateToken(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue CreateToken: %v", err)
		return user.AuthOutput{}, err
	}
	payload, err := uc.jwtManager.Verify(token)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue Verify: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Token: token, ExpiresAt: payload.ExpiresAt}, nil
}
