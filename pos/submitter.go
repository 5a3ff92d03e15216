package pos

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"restoflow/entity"
	"restoflow/utils"
)

// Submitter turns a finalized cart into an order. The order becomes
// visible on the register before any network round-trip; when the
// server is unreachable the order lands in the offline queue instead,
// and the operator sees it as accepted either way.
type Submitter struct {
	Gateway  Gateway
	Queue    *OfflineQueue
	Register *Register
	Catalog  *Catalog

	Restaurant entity.Restaurant
	CashierID  uint
}

// Checkout builds and submits the order, then clears the cart
// unconditionally. An empty cart is a no-op, not an error. The only
// error returned is a local durable-store failure; a network failure
// is absorbed by the queue.
func (s *Submitter) Checkout(ctx context.Context, cart *Cart) (*entity.Order, error) {
	if cart.Empty() {
		return nil, nil
	}

	lines := cart.Lines()
	totals := Calculate(lines, s.Restaurant.TaxRate)

	order := entity.Order{
		Code:         utils.NewOrderCode(),
		ClientKey:    uuid.NewString(),
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Discount:     totals.Discount,
		Total:        totals.Total,
		Status:       entity.OrderStatusPaid,
		PlacedAt:     time.Now(),
		CashierID:    s.CashierID,
		RestaurantID: s.Restaurant.ID,
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	// optimistic: visible before the network round-trip
	s.Register.Add(order, StatusPending)
	defer cart.Clear()

	persisted, err := s.Gateway.SubmitOrder(ctx, order, s.Restaurant.ID)
	if err != nil {
		if qerr := s.Queue.Append(order); qerr != nil {
			s.Register.SetStatus(order.ClientKey, StatusFailed)
			return &order, qerr
		}
		s.Register.SetStatus(order.ClientKey, StatusQueued)
		log.Printf("order %s queued offline: %v", order.Code, err)
		return &order, nil
	}

	s.Register.SetStatus(order.ClientKey, StatusConfirmed)

	// the server decremented stock; pull the fresh counts
	if items, ierr := s.Gateway.Items(ctx, s.Restaurant.ID); ierr == nil {
		s.Catalog.Replace(items)
	}

	return persisted, nil
}
