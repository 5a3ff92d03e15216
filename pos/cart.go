package pos

import (
	"github.com/shopspring/decimal"

	"restoflow/entity"
)

// CartLine captures name and price at add time. Catalog edits during
// an open session never touch a line that is already in the cart.
type CartLine struct {
	ItemID    uint
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Cart is the open checkout session of one terminal: an ordered list
// of lines, unique by item, discarded on checkout or clear. One
// operator per terminal, so no locking. Every operation is total;
// there are no error cases.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem increments the existing line or appends a new one with
// quantity 1. Deliberately no stock check: a zero-stock item may still
// be sold (the inventory count is advisory at the counter).
func (c *Cart) AddItem(item entity.Item) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
}

// UpdateQuantity adjusts a line by delta, floored at zero; a line that
// reaches zero is removed. Unknown item IDs are a no-op.
func (c *Cart) UpdateQuantity(itemID uint, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = q
		}
		return
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line looks up one line by item ID.
func (c *Cart) Line(itemID uint) (CartLine, bool) {
	for _, l := range c.lines {
		if l.ItemID == itemID {
			return l, true
		}
	}
	return CartLine{}, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
