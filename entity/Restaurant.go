package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Plan tiers
const (
	PlanBasic      = "BASIC"
	PlanPro        = "PRO"
	PlanEnterprise = "ENTERPRISE"
)

// Restaurant is one tenant: an isolated data scope in the shared deployment.
type Restaurant struct {
	gorm.Model
	Name     string          `gorm:"not null" json:"name"`
	Logo     string          `json:"logo"`
	Address  string          `json:"address"`
	Currency string          `gorm:"default:$" json:"currency"`
	TaxRate  decimal.Decimal `gorm:"type:decimal(6,4)" json:"taxRate"` // fraction, 0.1 = 10%
	Plan     string          `gorm:"default:BASIC" json:"plan"`

	// preload only when needed
	Categories []Category `json:"-"`
	Items      []Item     `json:"-"`
	Users      []User     `json:"-"`
	Orders     []Order    `json:"-"`
}
