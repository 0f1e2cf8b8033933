package catalog

import (
	"strings"

	"github.com/ginjaninja78/ventas-pos/internal/types"
)

// Store holds the current catalog. It is owned by the application state and
// is not safe for concurrent use on its own.
type Store struct {
	products []types.Product
}

// NewStore creates a store seeded with products (which may be nil).
func NewStore(products []types.Product) *Store {
	s := &Store{}
	s.Replace(products)
	return s
}

// Replace discards the current catalog and installs products.
func (s *Store) Replace(products []types.Product) {
	s.products = append([]types.Product(nil), products...)
	if s.products == nil {
		s.products = []types.Product{}
	}
}

// All returns a copy of every product.
func (s *Store) All() []types.Product {
	return append([]types.Product{}, s.products...)
}

// Len returns the number of products.
func (s *Store) Len() int {
	return len(s.products)
}

// Find returns the product with the given identity key.
func (s *Store) Find(key string) (types.Product, bool) {
	for _, p := range s.products {
		if p.Key() == key {
			return p, true
		}
	}
	return types.Product{}, false
}

// Search returns the products whose code, name or presentation contains
// query, case-insensitively. A blank query matches everything.
func (s *Store) Search(query string) []types.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	out := []types.Product{}
	for _, p := range s.products {
		for _, v := range []string{p.Code, p.Name, p.Presentation} {
			if strings.Contains(strings.ToLower(v), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
