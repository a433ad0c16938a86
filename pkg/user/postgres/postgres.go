// Package postgres persists users in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"cartflow/pkg/user"
)

// Repository reads users from PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Bootstrap creates the users table when it does not exist yet.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			age INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`)
	return err
}

// FindAll returns all users ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,email,age,created_at,updated_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id,name,email,age,created_at,updated_at FROM users WHERE id=$1", id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}
