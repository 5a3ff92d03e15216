package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is a snapshot of a cart line at checkout time. Name and
// UnitPrice are captured copies; later catalog edits do not touch them.
type OrderLine struct {
	gorm.Model
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Quantity  int             `json:"quantity"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"`
}
