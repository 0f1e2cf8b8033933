// Package cart implements the cart engine: an ordered set of cart lines keyed
// by product identity.
//
// Lines keep insertion order. Re-adding a product bumps its quantity in
// place and keeps the price captured when the line was created. A line whose
// quantity would drop to zero is removed, so no line ever has quantity <= 0.
package cart

import (
	"math"

	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/shopspring/decimal"
)

// Cart is the in-progress sale. Not safe for concurrent use.
type Cart struct {
	lines []types.CartLine
}

// New returns a cart seeded with lines. Lines with quantity < 1 are skipped
// so a hand-edited state file cannot break the quantity invariant.
func New(lines []types.CartLine) *Cart {
	c := &Cart{lines: []types.CartLine{}}
	for _, l := range lines {
		if l.Quantity >= 1 {
			c.lines = append(c.lines, l)
		}
	}
	return c
}

// Add puts one unit of p in the cart.
func (c *Cart) Add(p types.Product) {
	if i := c.index(p.Key()); i >= 0 {
		c.lines[i].Quantity = addQuantity(c.lines[i].Quantity, 1)
		return
	}
	c.lines = append(c.lines, types.CartLine{
		Code:         p.Code,
		Name:         p.Name,
		Presentation: p.Presentation,
		UnitPrice:    p.UnitPrice,
		Quantity:     1,
	})
}

// ChangeQuantity adds delta to the quantity of the line with the given key.
// The result is clamped to [0, math.MaxInt] and a zero line is removed.
// Unknown keys are ignored.
func (c *Cart) ChangeQuantity(key string, delta int) {
	i := c.index(key)
	if i < 0 {
		return
	}
	qty := max(0, addQuantity(c.lines[i].Quantity, delta))
	if qty == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = qty
}

// Remove drops the line with the given key, if any.
func (c *Cart) Remove(key string) {
	if i := c.index(key); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = []types.CartLine{}
}

// Total returns the sum of UnitPrice * Quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []types.CartLine {
	return append([]types.CartLine{}, c.lines...)
}

// Len returns the number of lines (not units).
func (c *Cart) Len() int {
	return len(c.lines)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// addQuantity returns qty+delta, saturating at math.MaxInt. qty is never
// negative, so the sum cannot underflow.
func addQuantity(qty, delta int) int {
	if delta > 0 && qty > math.MaxInt-delta {
		return math.MaxInt
	}
	return qty + delta
}

func (c *Cart) index(key string) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}
