// Package storage provides cart persistence backends. Each backend
// stores the whole line set as one JSON array, overwritten wholesale on
// every save.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cartflow/pkg/cart"
)

// File persists the cart to a single JSON file, the browser
// local-storage analog for a CLI session.
type File struct {
	path string
}

// NewFile returns a file-backed cart store writing to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Save overwrites the file with the JSON-encoded lines.
func (f *File) Save(ctx context.Context, lines []cart.Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing cart file: %w", err)
	}
	return nil
}

// Load reads the stored lines. A missing file yields nil lines and no
// error; unparseable content is an error so the caller can fall back to
// an empty cart.
func (f *File) Load(ctx context.Context) ([]cart.Line, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cart file: %w", err)
	}
	var lines []cart.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return lines, nil
}
