package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"cartflow/pkg/cart"
)

// Key is the single redis key holding the serialized cart.
const Key = "cart"

// Redis persists the cart as one JSON value under Key, letting a cart
// survive across hosts instead of a local file.
type Redis struct {
	client *redis.Client
}

// NewRedis returns a redis-backed cart store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Save overwrites the stored value with the JSON-encoded lines.
func (r *Redis) Save(ctx context.Context, lines []cart.Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := r.client.Set(ctx, Key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing cart key: %w", err)
	}
	return nil
}

// Load reads the stored lines. An absent key yields nil lines and no
// error.
func (r *Redis) Load(ctx context.Context) ([]cart.Line, error) {
	data, err := r.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cart key: %w", err)
	}
	var lines []cart.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return lines, nil
}
