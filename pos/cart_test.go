package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"restoflow/entity"
)

func item(id uint, name string, price float64) entity.Item {
	it := entity.Item{Name: name, Price: decimal.NewFromFloat(price), Available: true}
	it.ID = id
	return it
}

func TestCart_AddItem(t *testing.T) {
	cart := NewCart()
	burger := item(1, "Burger", 10.00)
	tea := item(2, "Iced Tea", 2.50)

	cart.AddItem(burger)
	cart.AddItem(tea)
	cart.AddItem(burger) // increments, does not duplicate

	assert.Equal(t, 2, cart.Len())

	line, ok := cart.Line(1)
	assert.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Burger", line.Name)

	// insertion order is preserved
	lines := cart.Lines()
	assert.Equal(t, uint(1), lines[0].ItemID)
	assert.Equal(t, uint(2), lines[1].ItemID)
}

func TestCart_AddItem_SnapshotsPrice(t *testing.T) {
	cart := NewCart()
	burger := item(1, "Burger", 10.00)
	cart.AddItem(burger)

	// a catalog price change must not touch the open cart
	burger.Price = decimal.NewFromFloat(99.00)
	cart.AddItem(burger)

	line, _ := cart.Line(1)
	assert.Equal(t, "10", line.UnitPrice.String())
	assert.Equal(t, 2, line.Quantity)
}

func TestCart_AddItem_NoStockCheck(t *testing.T) {
	cart := NewCart()
	soldOut := item(3, "Last Slice", 4.00)
	soldOut.Stock = 0

	cart.AddItem(soldOut)
	assert.Equal(t, 1, cart.Len())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name       string
		deltas     []int
		wantQty    int
		wantInCart bool
	}{
		{name: "increment", deltas: []int{1, 1}, wantQty: 3, wantInCart: true},
		{name: "decrement", deltas: []int{-1}, wantQty: 0, wantInCart: false},
		{name: "floor_at_zero", deltas: []int{-10}, wantQty: 0, wantInCart: false},
		{name: "down_then_up", deltas: []int{1, -1}, wantQty: 1, wantInCart: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cart := NewCart()
			cart.AddItem(item(1, "Burger", 10.00))
			for _, d := range tc.deltas {
				cart.UpdateQuantity(1, d)
			}
			line, ok := cart.Line(1)
			assert.Equal(t, tc.wantInCart, ok)
			if ok {
				assert.Equal(t, tc.wantQty, line.Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantity_UnknownItemIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(item(1, "Burger", 10.00))

	cart.UpdateQuantity(42, 5)

	assert.Equal(t, 1, cart.Len())
	line, _ := cart.Line(1)
	assert.Equal(t, 1, line.Quantity)
}

func TestCart_RemoveByNegativeDelta(t *testing.T) {
	cart := NewCart()
	cart.AddItem(item(1, "Burger", 10.00))
	cart.UpdateQuantity(1, 2) // qty 3

	cart.UpdateQuantity(1, -3)

	_, ok := cart.Line(1)
	assert.False(t, ok, "line removed when quantity reaches zero")
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(item(1, "Burger", 10.00))
	cart.AddItem(item(2, "Tea", 2.50))

	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Empty(t, cart.Lines())
}

// Whatever sequence of mutations runs, the subtotal always equals the
// sum over current lines and no quantity goes negative.
func TestCart_SubtotalInvariant(t *testing.T) {
	cart := NewCart()
	items := []entity.Item{
		item(1, "Burger", 10.00),
		item(2, "Tea", 2.50),
		item(3, "Pizza", 12.50),
	}

	ops := []func(){
		func() { cart.AddItem(items[0]) },
		func() { cart.AddItem(items[1]) },
		func() { cart.UpdateQuantity(1, 3) },
		func() { cart.AddItem(items[2]) },
		func() { cart.UpdateQuantity(2, -5) },
		func() { cart.UpdateQuantity(3, 1) },
		func() { cart.AddItem(items[1]) },
		func() { cart.UpdateQuantity(99, 7) },
		func() { cart.UpdateQuantity(1, -2) },
	}

	for _, op := range ops {
		op()

		want := decimal.Zero
		for _, l := range cart.Lines() {
			assert.Positive(t, l.Quantity, "no line may have non-positive quantity")
			want = want.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		got := Calculate(cart.Lines(), decimal.Zero).Subtotal
		assert.True(t, got.Equal(want.Round(2)), "subtotal %s != %s", got, want)
	}
}
