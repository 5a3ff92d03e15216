package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold marks items the back office flags for restocking.
const LowStockThreshold = 10

// Item is one sellable catalog entry, owned by a Restaurant.
type Item struct {
	gorm.Model
	Name      string          `gorm:"not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Image     string          `json:"image"`
	Stock     int             `gorm:"default:0" json:"stock"`
	Available bool            `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}

// LowStock reports whether the back office should show a restock warning.
func (i Item) LowStock() bool { return i.Stock < LowStockThreshold }

// MarshalJSON adds the computed lowStock flag, so the inventory list
// can render the restock warning without knowing the threshold.
func (i Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		alias
		LowStock bool `json:"lowStock"`
	}{alias(i), i.LowStock()})
}
