package memory

import (
	"context"
	"testing"

	"cartflow/pkg/order"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New()
	o := order.Order{ID: "1", Items: []order.Item{{Name: "bacon", UnitPrice: 10.99, Quantity: 10}}}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "bacon" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "1"); err != order.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "1"); err != order.ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
