package auth

import (
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserRepository is the production store. There is no persistence
// layer in this service, so the map plus lock is the real thing, not a
// test double. Safe for concurrent registrations and logins.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

// Save stores the user keyed by email, assigning an ID when absent. The
// duplicate check happens under the same lock as the write, so two
// concurrent registrations of one email cannot both succeed.
func (r *InMemoryUserRepository) Save(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
