package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryUserRepository backs service tests. Emails are the lookup key
// and are matched case-insensitively, same as the Postgres repository's
// lower() queries.
type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *InMemoryUserRepository) Save(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	cp := *user
	r.users[emailKey(user.Email)] = &cp
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.users[emailKey(email)]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[emailKey(email)]
	if !ok {
		return nil, errors.New("user not found")
	}

	cp := *user
	return &cp, nil
}
