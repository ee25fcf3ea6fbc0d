package user

import "time"

// --- User Domain Model ---

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the service.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput is returned by Register and Login: the account plus a session
// token for it.
type AuthOutput struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

type MeOutput struct {
	User User
}
