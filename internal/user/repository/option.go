package repository

// CreateUserOptions holds parameters for inserting a new User.
// Email is expected to be normalised already.
type CreateUserOptions struct {
	Username     string
	Email        string
	PasswordHash string
}

// GetOneUserOptions selects a user by ID or, when ID is empty, by Email.
type GetOneUserOptions struct {
	ID    string
	Email string
}
