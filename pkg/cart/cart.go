// Package cart implements the client-side shopping cart: an in-memory
// line collection with stock-ceiling enforcement and write-through
// persistence.
package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cartflow/pkg/catalog"
)

// Line is one product's selected quantity in the cart. UnitPrice is
// copied from the catalog at add time.
type Line struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// ErrLimitReached signals a mutation that would push a line past the
// product's stock ceiling. State is left unchanged.
var ErrLimitReached = errors.New("quantity limit reached")

// Storage persists the full cart line set. Save overwrites the whole
// value; Load returns nil lines when nothing was stored.
type Storage interface {
	Save(ctx context.Context, lines []Line) error
	Load(ctx context.Context) ([]Line, error)
}

// Store holds the cart lines and enforces catalog ceilings on every
// mutation. It is not safe for concurrent use: mutations are expected
// to arrive one at a time from a single event loop.
type Store struct {
	catalog *catalog.Catalog
	storage Storage
	log     *zap.Logger
	lines   []Line
}

// New constructs a store bound to the given catalog. When storage is
// non-nil the previously persisted lines are restored; missing or
// corrupt data falls back to an empty cart. The storage stays attached
// as a change listener: every successful mutation re-serializes the
// full line set through it.
func New(ctx context.Context, cat *catalog.Catalog, st Storage, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{catalog: cat, storage: st, log: log}
	if st != nil {
		lines, err := st.Load(ctx)
		if err != nil {
			log.Warn("cart restore failed, starting empty", zap.Error(err))
		} else {
			s.lines = lines
		}
	}
	return s
}

// Add puts one unit of p into the cart. The first unit of a new line is
// added without a ceiling check (a ceiling-zero product is therefore
// addable once); incrementing an existing line past the product's
// ceiling returns ErrLimitReached and leaves the cart unchanged.
func (s *Store) Add(ctx context.Context, p catalog.Product) error {
	for i := range s.lines {
		if s.lines[i].Name != p.Name {
			continue
		}
		if s.lines[i].Quantity+1 > s.catalog.Ceiling(p.Name) {
			return ErrLimitReached
		}
		s.lines[i].Quantity++
		return s.persist(ctx)
	}
	s.lines = append(s.lines, Line{Name: p.Name, UnitPrice: p.UnitPrice, Quantity: 1})
	return s.persist(ctx)
}

// Remove deletes the line for name. Removing an absent line is a no-op.
func (s *Store) Remove(ctx context.Context, name string) error {
	for i := range s.lines {
		if s.lines[i].Name == name {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// SetQuantity sets the line for name to quantity. Absent lines are a
// no-op, zero removes the line, and a quantity above the product's
// ceiling returns ErrLimitReached without mutating.
func (s *Store) SetQuantity(ctx context.Context, name string, quantity int) error {
	for i := range s.lines {
		if s.lines[i].Name != name {
			continue
		}
		if quantity == 0 {
			return s.Remove(ctx, name)
		}
		if quantity > s.catalog.Ceiling(name) {
			return ErrLimitReached
		}
		s.lines[i].Quantity = quantity
		return s.persist(ctx)
	}
	return nil
}

// Lines returns a snapshot copy of the current cart lines.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalPrice recomputes the cart total on every call: the sum of
// quantity times unit price over all lines, rounded to two decimals.
func (s *Store) TotalPrice() float64 {
	total := decimal.Zero
	for _, l := range s.lines {
		price := decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(price)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// persist writes the full line set through the attached storage. The
// in-memory mutation is kept even when the write fails; there is no
// rollback, only the logged and returned error.
func (s *Store) persist(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Save(ctx, s.lines); err != nil {
		s.log.Error("cart persist failed", zap.Error(err))
		return err
	}
	return nil
}
