package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"property-listings/internal/model"
	"property-listings/internal/user"
	"property-listings/internal/user/repository/memory"
	"property-listings/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	repo, err := memory.New(&mockLogger{}, nil)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	tokens, err := scope.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	uc := New(repo, tokens, &mockLogger{}).(*implUseCase)
	uc.hashCost = bcrypt.MinCost
	return uc, tokens
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   user.RegisterInput
		wantErr error
	}{
		{name: "blank username", input: user.RegisterInput{Username: "  ", Email: "a@b.co", Password: "x"}, wantErr: user.ErrInvalidUsername},
		{name: "email without at", input: user.RegisterInput{Username: "a", Email: "ab.co", Password: "x"}, wantErr: user.ErrInvalidEmail},
		{name: "email without dot", input: user.RegisterInput{Username: "a", Email: "a@bco", Password: "x"}, wantErr: user.ErrInvalidEmail},
		{name: "email with space", input: user.RegisterInput{Username: "a", Email: "a b@c.co", Password: "x"}, wantErr: user.ErrInvalidEmail},
		{name: "empty password", input: user.RegisterInput{Username: "a", Email: "a@b.co"}, wantErr: user.ErrInvalidPassword},
		{name: "long password", input: user.RegisterInput{Username: "a", Email: "a@b.co", Password: strings.Repeat("p", 73)}, wantErr: user.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)
			_, err := uc.Register(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("success signs in", func(t *testing.T) {
		uc, tokens := newTestUseCase(t)
		out, err := uc.Register(ctx, user.RegisterInput{Username: " Dana ", Email: " Dana@Example.com ", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Username != "Dana" || out.User.Email != "dana@example.com" {
			t.Errorf("unexpected user: %+v", out.User)
		}
		if out.User.PasswordHash == "secret" || out.User.PasswordHash == "" {
			t.Errorf("password must be hashed")
		}
		payload, err := tokens.Verify(out.Token)
		if err != nil || payload.UserID != out.User.ID {
			t.Errorf("token does not identify the new user: %+v (%v)", payload, err)
		}
		if out.ExpiresAt.IsZero() {
			t.Errorf("expected expiry")
		}
	})

	t.Run("email taken case-insensitively", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		if _, err := uc.Register(ctx, user.RegisterInput{Username: "a", Email: "a@b.co", Password: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Register(ctx, user.RegisterInput{Username: "b", Email: "A@B.CO", Password: "y"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)
	reg, err := uc.Register(ctx, user.RegisterInput{Username: "dana", Email: "dana@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		out, err := uc.Login(ctx, user.LoginInput{Email: "DANA@example.com", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != reg.User.ID || out.Token == "" {
			t.Errorf("unexpected login output: %+v", out)
		}
	})

	cases := []struct {
		name  string
		input user.LoginInput
	}{
		{"wrong password", user.LoginInput{Email: "dana@example.com", Password: "nope"}},
		{"unknown email", user.LoginInput{Email: "other@example.com", Password: "secret"}},
		{"empty", user.LoginInput{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, c.input); !errors.Is(err, user.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)
	reg, err := uc.Register(ctx, user.RegisterInput{Username: "dana", Email: "dana@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	out, err := uc.Me(ctx, model.Scope{UserID: reg.User.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Email != "dana@example.com" {
		t.Errorf("unexpected user: %+v", out.User)
	}

	if _, err := uc.Me(ctx, model.Scope{}); !errors.Is(err, user.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := uc.Me(ctx, model.Scope{UserID: "ghost"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
