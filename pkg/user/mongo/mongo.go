// Package mongo reads users from a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cartflow/pkg/user"
)

type userDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Age       int       `bson:"age"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Repository reads users from the "users" collection.
type Repository struct {
	col *mongo.Collection
}

// New creates a MongoDB repository on the given database.
func New(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("users")}
}

// FindAll returns all users.
func (r *Repository) FindAll(ctx context.Context) ([]user.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, user.User(d))
	}
	return users, nil
}

// FindByID retrieves a user by ID.
func (r *Repository) FindByID(ctx context.Context, id string) (user.User, error) {
	var d userDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return user.User(d), nil
}
