package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order statuses. Checkout always produces PAID.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

// Order is one finalized checkout. The terminal generates Code and
// ClientKey before any server round-trip so the order can exist while
// offline; rows are immutable after creation.
type Order struct {
	gorm.Model
	Code      string `gorm:"uniqueIndex:uniq_tenant_code" json:"code"` // ORD-XXXXXX
	ClientKey string `gorm:"uniqueIndex" json:"clientKey"`             // replay idempotency

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax"`
	Discount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total"`

	Status   string    `gorm:"default:PENDING" json:"status"`
	PlacedAt time.Time `json:"placedAt"` // set on the terminal at checkout time

	CashierID uint `json:"cashierId"`
	Cashier   User `json:"-"`

	RestaurantID uint       `gorm:"index;uniqueIndex:uniq_tenant_code" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Lines []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}
