// Package catalog holds the static list of purchasable products.
package catalog

// Product is a catalog entry. Quantity is the stock ceiling: the most
// units of the product a single cart may hold.
type Product struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Catalog is an immutable, ordered product list with name lookup.
type Catalog struct {
	products []Product
	byName   map[string]Product
}

// New builds a catalog from the given products. Later duplicates of a
// name win the lookup, matching last-write map semantics.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byName:   make(map[string]Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range products {
		c.byName[p.Name] = p
	}
	return c
}

// Default returns the demo inventory.
func Default() *Catalog {
	return New([]Product{
		{Name: "bacon", UnitPrice: 10.99, Quantity: 10},
		{Name: "eggs", UnitPrice: 3.99, Quantity: 10},
		{Name: "cheese", UnitPrice: 6.99, Quantity: 10},
		{Name: "chives", UnitPrice: 1.00, Quantity: 10},
		{Name: "wine", UnitPrice: 11.99, Quantity: 10},
		{Name: "brandy", UnitPrice: 17.55, Quantity: 10},
		{Name: "bananas", UnitPrice: 0.69, Quantity: 10},
		{Name: "ham", UnitPrice: 2.69, Quantity: 10},
		{Name: "tomatoes", UnitPrice: 3.26, Quantity: 10},
		{Name: "tissue", UnitPrice: 8.45, Quantity: 10},
	})
}

// Products returns a copy of the catalog in definition order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by name.
func (c *Catalog) Get(name string) (Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Ceiling reports the stock ceiling for name, zero when unknown.
func (c *Catalog) Ceiling(name string) int {
	return c.byName[name].Quantity
}
