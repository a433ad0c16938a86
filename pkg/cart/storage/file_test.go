package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cartflow/pkg/cart"
)

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.json")
	f := NewFile(path)

	lines := []cart.Line{
		{Name: "bacon", UnitPrice: 10.99, Quantity: 2},
		{Name: "eggs", UnitPrice: 3.99, Quantity: 1},
	}
	require.NoError(t, f.Save(ctx, lines))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestFileLoadMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "absent.json"))
	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFile(path).Load(context.Background())
	require.Error(t, err)
}

func TestFileSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.json")
	f := NewFile(path)

	require.NoError(t, f.Save(ctx, []cart.Line{{Name: "bacon", UnitPrice: 10.99, Quantity: 9}}))
	require.NoError(t, f.Save(ctx, []cart.Line{{Name: "ham", UnitPrice: 2.69, Quantity: 1}}))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ham", got[0].Name)
}
