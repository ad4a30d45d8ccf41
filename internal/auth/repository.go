package auth

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// Save stores a new user, rejecting a taken email with ErrEmailTaken.
	Save(user *User) error
	FindByEmail(email string) (*User, error)
}
