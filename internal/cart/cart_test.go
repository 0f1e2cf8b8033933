package cart

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(code, name string, price int64) types.Product {
	return types.Product{Code: code, Name: name, UnitPrice: decimal.NewFromInt(price)}
}

func TestAddAggregates(t *testing.T) {
	c := New(nil)

	c.Add(product("A1", "Widget", 1500))
	c.Add(product("A1", "Widget", 1500))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "A1", lines[0].Code)
	assert.Equal(t, 2, lines[0].Quantity)

	c.ChangeQuantity("A1", -2)
	assert.True(t, c.Empty())
}

func TestAddKeepsFirstPrice(t *testing.T) {
	c := New(nil)
	c.Add(product("A1", "Widget", 1500))
	c.Add(product("A1", "Widget", 1800))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
}

func TestAddWithoutCodeUsesName(t *testing.T) {
	c := New(nil)
	c.Add(product("", "Pan", 100))
	c.Add(product("", "Pan", 100))
	c.Add(product("", "Leche", 200))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Leche", lines[1].Name)
}

func TestChangeQuantity(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int // 0 means the line is gone
	}{
		{"increase", 3, 5},
		{"decrease", -1, 1},
		{"to zero", -2, 0},
		{"below zero clamps and removes", -10, 0},
		{"no change", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]types.CartLine{{Code: "A1", Name: "Widget", Quantity: 2}})
			c.ChangeQuantity("A1", tt.delta)

			if tt.want == 0 {
				assert.True(t, c.Empty())
				return
			}
			require.Equal(t, 1, c.Len())
			assert.Equal(t, tt.want, c.Lines()[0].Quantity)
		})
	}
}

func TestAbsentLineIsNoOp(t *testing.T) {
	c := New(nil)
	c.Add(product("A1", "Widget", 10))

	c.ChangeQuantity("missing", 5)
	c.Remove("missing")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRemoveKeepsOrder(t *testing.T) {
	c := New(nil)
	c.Add(product("A1", "Widget", 10))
	c.Add(product("A2", "Gadget", 20))
	c.Add(product("A3", "Gizmo", 30))

	c.Remove("A2")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "A1", lines[0].Code)
	assert.Equal(t, "A3", lines[1].Code)
}

func TestTotal(t *testing.T) {
	c := New(nil)
	assert.True(t, c.Total().IsZero())

	c.Add(product("A1", "Widget", 1500))
	c.Add(product("A1", "Widget", 1500))
	c.Add(types.Product{Code: "A2", Name: "Gadget", UnitPrice: decimal.RequireFromString("2.5")})

	assert.Equal(t, "3002.5", c.Total().String())
}

func TestNewSkipsInvalidLines(t *testing.T) {
	c := New([]types.CartLine{
		{Code: "A1", Quantity: 1},
		{Code: "A2", Quantity: 0},
		{Code: "A3", Quantity: -1},
	})

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "A1", c.Lines()[0].Code)
}

func TestLinesIsACopy(t *testing.T) {
	c := New(nil)
	c.Add(product("A1", "Widget", 10))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestClear(t *testing.T) {
	c := New(nil)
	c.Add(product("A1", "Widget", 10))
	c.Clear()

	assert.True(t, c.Empty())
	assert.NotNil(t, c.Lines())
}

func TestChangeQuantitySaturates(t *testing.T) {
	c := New([]types.CartLine{{Code: "A1", Name: "Widget", Quantity: 2}})

	c.ChangeQuantity("A1", math.MaxInt)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, math.MaxInt, c.Lines()[0].Quantity)

	c.Add(product("A1", "Widget", 10))
	assert.Equal(t, math.MaxInt, c.Lines()[0].Quantity)

	c.ChangeQuantity("A1", math.MinInt)
	assert.True(t, c.Empty())
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	catalog := []types.Product{
		product("A1", "Widget", 1500),
		product("A2", "Gadget", 250),
		product("", "Pan", 300),
		{Code: "A3", Name: "Yerba", UnitPrice: decimal.RequireFromString("2.75")},
	}

	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			c := New(nil)

			// Expected order: keys in first-insertion order among live lines.
			var order []string

			for step := 0; step < 200; step++ {
				p := catalog[rng.Intn(len(catalog))]
				key := p.Key()

				switch rng.Intn(3) {
				case 0:
					if c.index(key) < 0 {
						order = append(order, key)
					}
					c.Add(p)
				case 1:
					c.ChangeQuantity(key, rng.Intn(7)-4)
				case 2:
					c.Remove(key)
				}

				live := order[:0]
				for _, k := range order {
					if c.index(k) >= 0 {
						live = append(live, k)
					}
				}
				order = live

				lines := c.Lines()
				require.Len(t, lines, len(order), "step %d", step)

				sum := decimal.Zero
				for i, l := range lines {
					require.GreaterOrEqual(t, l.Quantity, 1, "step %d", step)
					require.Equal(t, order[i], l.Key(), "step %d", step)
					sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
				}
				require.True(t, sum.Equal(c.Total()), "step %d: total %s, sum %s", step, c.Total(), sum)
			}
		})
	}
}
