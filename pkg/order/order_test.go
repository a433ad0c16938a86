package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Order{Items: []Item{{Name: "bacon", UnitPrice: 10.99, Quantity: 10}}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		o    Order
		want error
	}{
		{"no items", Order{}, ErrNoItems},
		{"empty items", Order{Items: []Item{}}, ErrNoItems},
		{"negative price", Order{Items: []Item{{Name: "bacon", UnitPrice: -1, Quantity: 1}}}, ErrInvalidItem},
		{"negative quantity", Order{Items: []Item{{Name: "bacon", UnitPrice: 1, Quantity: -1}}}, ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.o.Validate(), tt.want)
		})
	}
}

func TestValidateAllowsZeroValues(t *testing.T) {
	// Zero price and zero quantity pass the schema; only negatives are
	// rejected.
	o := Order{Items: []Item{{Name: "freebie", UnitPrice: 0, Quantity: 0}}}
	require.NoError(t, o.Validate())
}
