// Package memory implements an in-memory user repository.
package memory

import (
	"context"
	"sync"

	"cartflow/pkg/user"
)

// Repository provides an in-memory implementation of user.Repository.
type Repository struct {
	mu    sync.RWMutex
	users []user.User
}

// New creates a repository pre-populated with the given users.
func New(users ...user.User) *Repository {
	return &Repository{users: users}
}

// FindAll returns all users in insertion order.
func (r *Repository) FindAll(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
