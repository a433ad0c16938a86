// Package user defines the read-only user model served by the API.
package user

import (
	"context"
	"errors"
	"time"
)

// User is a registered customer account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository defines read access to users.
type Repository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (User, error)
}

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")
