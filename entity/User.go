package entity

import (
	"gorm.io/gorm"
)

// Roles
const (
	RoleSuperAdmin      = "SUPER_ADMIN"
	RoleRestaurantAdmin = "RESTAURANT_ADMIN"
	RoleCashier         = "CASHIER"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"not null;default:CASHIER" json:"role"`

	// nil for SUPER_ADMIN accounts that roam across tenants
	RestaurantID *uint       `gorm:"index" json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Orders []Order `gorm:"foreignKey:CashierID" json:"-"`
}
