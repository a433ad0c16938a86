package memory

import (
	"context"
	"testing"

	"cartflow/pkg/user"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(
		user.User{ID: "1", Name: "Alice", Email: "alice@example.com", Age: 42},
		user.User{ID: "2", Name: "Robert", Email: "robert@example.com", Age: 21},
	)

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("find all: %v len=%d", err, len(all))
	}
	got, err := repo.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got.Name != "Robert" {
		t.Fatalf("expected Robert, got %s", got.Name)
	}
	if _, err := repo.FindByID(ctx, "99"); err != user.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
