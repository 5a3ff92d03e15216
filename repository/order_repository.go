package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restoflow/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindByClientKey backs replay idempotency: a queued order resubmitted
// by the sync agent must echo the already persisted row.
func (r *OrderRepository) FindByClientKey(restaurantID uint, clientKey string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Lines").
		Where("restaurant_id = ? AND client_key = ?", restaurantID, clientKey).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByCode(restaurantID uint, code string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Lines").
		Where("restaurant_id = ? AND code = ?", restaurantID, code).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders → newest first, lines included
func (r *OrderRepository) ListByRestaurant(restaurantID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.Order
	err := r.DB.Preload("Lines").
		Where("restaurant_id = ?", restaurantID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

// DailySales is one row of the analytics rollup.
type DailySales struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

// SalesByDay aggregates paid orders per calendar day since the cutoff.
func (r *OrderRepository) SalesByDay(restaurantID uint, since time.Time) ([]DailySales, error) {
	var out []DailySales
	err := r.DB.Model(&entity.Order{}).
		Select("DATE(placed_at) AS date, SUM(total) AS revenue, COUNT(*) AS orders").
		Where("restaurant_id = ? AND status = ? AND placed_at >= ?",
			restaurantID, entity.OrderStatusPaid, since).
		Group("DATE(placed_at)").
		Order("date").
		Scan(&out).Error
	return out, err
}
