package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("jwt secret is required")
)

// Payload is the verified content of a session token.
type Payload struct {
	UserID    string
	ExpiresAt time.Time
}

// Manager issues and verifies session tokens.
type Manager interface {
	CreateToken(userID string) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// New creates an HS256 Manager.
func New(secret string, expiration time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &jwtManager{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}, nil
}

func (m *jwtManager) CreateToken(userID string) (string, error) {
	now := m.now()
	c := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (m *jwtManager) Verify(token string) (Payload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || c.UserID == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		UserID:    c.UserID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
