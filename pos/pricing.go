package pos

import (
	"github.com/shopspring/decimal"
)

// Totals is the derived pricing of a cart. Recomputed in full on every
// mutation; carts are human-sized, caching would buy nothing.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Calculate is a pure function of the lines and the tenant's tax rate:
// subtotal = Σ price×qty, tax = subtotal×rate, total = subtotal+tax.
// Discount is always zero in the POS flow. Amounts round to cents.
func Calculate(lines []CartLine, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	discount := decimal.Zero

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount).Round(2),
	}
}
