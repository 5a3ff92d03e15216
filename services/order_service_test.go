package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"restoflow/entity"
	"restoflow/repository"
)

func newOrderService(t *testing.T) (*OrderService, entity.Restaurant) {
	t.Helper()
	db := testDB(t)
	rest := seedRestaurant(t, db)
	svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCatalogRepository(db), nil, nil, nil)
	return svc, rest
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func submitIn(it entity.Item, qty int, clientKey string) *SubmitOrderIn {
	subtotal := it.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
	tax := subtotal.Mul(d("0.1")).Round(2)
	return &SubmitOrderIn{
		ClientKey: clientKey,
		CashierID: 1,
		PlacedAt:  time.Now(),
		Lines: []SubmitLineIn{
			{ItemID: it.ID, Name: it.Name, Price: it.Price, Quantity: qty},
		},
		Subtotal: subtotal,
		Tax:      tax,
		Discount: decimal.Zero,
		Total:    subtotal.Add(tax).Round(2),
	}
}

func TestOrderService_Submit(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 20)

	order, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 2, "key-1"))
	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.NotEmpty(t, order.Code)
	assert.Equal(t, "22.00", order.Total.StringFixed(2))
	assert.Len(t, order.Lines, 1)

	// server owns the stock decrement
	var after entity.Item
	assert.NoError(t, svc.DB.First(&after, it.ID).Error)
	assert.Equal(t, 18, after.Stock)
}

func TestOrderService_Submit_StockFloorsAtZero(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 3)

	_, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 5, "key-1"))
	assert.NoError(t, err)

	var after entity.Item
	assert.NoError(t, svc.DB.First(&after, it.ID).Error)
	assert.Equal(t, 0, after.Stock, "overselling clamps stock instead of going negative")
}

func TestOrderService_Submit_IdempotentReplay(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 20)

	first, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 2, "replay-key"))
	assert.NoError(t, err)

	second, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 2, "replay-key"))
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Code, second.Code)

	var count int64
	svc.DB.Model(&entity.Order{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// the replay must not decrement stock again
	var after entity.Item
	assert.NoError(t, svc.DB.First(&after, it.ID).Error)
	assert.Equal(t, 18, after.Stock)
}

func TestOrderService_Submit_RejectsBadPayloads(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 20)

	t.Run("no lines", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), rest.ID, &SubmitOrderIn{})
		assert.ErrorIs(t, err, ErrNoLines)
	})

	t.Run("zero quantity", func(t *testing.T) {
		in := submitIn(it, 2, "")
		in.Lines[0].Quantity = 0
		_, err := svc.Submit(context.Background(), rest.ID, in)
		assert.ErrorIs(t, err, ErrBadLine)
	})

	t.Run("totals mismatch", func(t *testing.T) {
		in := submitIn(it, 2, "")
		in.Total = d("1.00")
		_, err := svc.Submit(context.Background(), rest.ID, in)
		assert.ErrorIs(t, err, ErrTotalsMismatch)
	})
}

func TestOrderService_Submit_SkipsDeletedItems(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 20)
	assert.NoError(t, svc.DB.Delete(&entity.Item{}, it.ID).Error)

	// queued during an offline window, item removed meanwhile: the
	// order still lands with its snapshot line
	order, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 2, "key-1"))
	assert.NoError(t, err)
	assert.Equal(t, "Burger", order.Lines[0].Name)
}

func TestOrderService_List_NewestFirst(t *testing.T) {
	svc, rest := newOrderService(t)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 50)

	older := submitIn(it, 1, "key-a")
	older.PlacedAt = time.Now().Add(-time.Hour)
	_, err := svc.Submit(context.Background(), rest.ID, older)
	assert.NoError(t, err)
	newer, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 2, "key-b"))
	assert.NoError(t, err)

	orders, err := svc.List(rest.ID, 10)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, newer.Code, orders[0].Code)
	assert.Len(t, orders[0].Lines, 1, "lines are preloaded")
}

func TestOrderService_GetByCode_ScopedToTenant(t *testing.T) {
	svc, rest := newOrderService(t)
	other := seedRestaurant(t, svc.DB)
	it := seedItem(t, svc.DB, rest.ID, "Burger", 10.00, 20)

	order, err := svc.Submit(context.Background(), rest.ID, submitIn(it, 1, "key-1"))
	assert.NoError(t, err)

	found, err := svc.GetByCode(rest.ID, order.Code)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = svc.GetByCode(other.ID, order.Code)
	assert.Error(t, err, "another tenant cannot read the order")
}
