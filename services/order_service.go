package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restoflow/entity"
	"restoflow/events"
	"restoflow/repository"
	"restoflow/utils"
)

var (
	ErrNoLines        = errors.New("order has no lines")
	ErrBadLine        = errors.New("line quantity must be positive and price non-negative")
	ErrTotalsMismatch = errors.New("order totals do not match lines")
)

// Broadcaster pushes persisted orders to live dashboard clients.
type Broadcaster interface {
	Broadcast(o *entity.Order)
}

// OrderService is the order submission boundary. Terminals build the
// whole order client-side (offline-first), so this side validates the
// payload, persists it idempotently and owns the stock decrement.
type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	Catalog   *repository.CatalogRepository
	Cache     *repository.CatalogCache
	Publisher events.Publisher
	Feed      Broadcaster
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, catalog *repository.CatalogRepository,
	cache *repository.CatalogCache, publisher events.Publisher, feed Broadcaster) *OrderService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, Cache: cache, Publisher: publisher, Feed: feed}
}

type SubmitLineIn struct {
	ItemID   uint            `json:"itemId" binding:"required"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type SubmitOrderIn struct {
	Code      string          `json:"code"`
	ClientKey string          `json:"clientKey"`
	CashierID uint            `json:"cashierId"`
	PlacedAt  time.Time       `json:"placedAt"`
	Lines     []SubmitLineIn  `json:"lines" binding:"required"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// Submit persists one checkout. Replays of the same client key echo
// the stored order instead of creating a duplicate, which is what lets
// the sync agent resubmit queued orders safely.
func (s *OrderService) Submit(ctx context.Context, restaurantID uint, in *SubmitOrderIn) (*entity.Order, error) {
	if len(in.Lines) == 0 {
		return nil, ErrNoLines
	}

	if in.ClientKey != "" {
		if existing, err := s.Repo.FindByClientKey(restaurantID, in.ClientKey); err == nil {
			return existing, nil
		}
	}

	subtotal := decimal.Zero
	for _, l := range in.Lines {
		if l.Quantity <= 0 || l.Price.IsNegative() {
			return nil, ErrBadLine
		}
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)
	total := subtotal.Add(in.Tax).Sub(in.Discount).Round(2)
	if !subtotal.Equal(in.Subtotal) || !total.Equal(in.Total) {
		return nil, ErrTotalsMismatch
	}

	order := &entity.Order{
		Code:         in.Code,
		ClientKey:    in.ClientKey,
		Subtotal:     in.Subtotal,
		Tax:          in.Tax,
		Discount:     in.Discount,
		Total:        in.Total,
		Status:       entity.OrderStatusPaid,
		PlacedAt:     in.PlacedAt,
		CashierID:    in.CashierID,
		RestaurantID: restaurantID,
	}
	if order.Code == "" {
		order.Code = utils.NewOrderCode()
	}
	if order.ClientKey == "" {
		order.ClientKey = uuid.NewString()
	}
	if order.PlacedAt.IsZero() {
		order.PlacedAt = time.Now()
	}
	for _, l := range in.Lines {
		order.Lines = append(order.Lines, entity.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		// Items deleted since the order was queued are skipped: the
		// snapshot line stays on the order, there is just no stock row
		// left to decrement.
		for _, l := range order.Lines {
			if _, err := s.Catalog.GetItem(restaurantID, l.ItemID); err != nil {
				continue
			}
			if err := s.Catalog.DecrementStock(tx, restaurantID, l.ItemID, l.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// a racing replay may have inserted the same client key first
		if existing, ferr := s.Repo.FindByClientKey(restaurantID, order.ClientKey); ferr == nil {
			return existing, nil
		}
		return nil, err
	}

	// side effects are best-effort; the order is already durable
	_ = s.Cache.Invalidate(ctx, restaurantID)
	if err := s.Publisher.PublishOrderPlaced(ctx, order); err != nil {
		log.Printf("publish order %s: %v", order.Code, err)
	}
	if s.Feed != nil {
		s.Feed.Broadcast(order)
	}

	return order, nil
}

func (s *OrderService) List(restaurantID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListByRestaurant(restaurantID, limit)
}

func (s *OrderService) GetByCode(restaurantID uint, code string) (*entity.Order, error) {
	return s.Repo.FindByCode(restaurantID, code)
}
