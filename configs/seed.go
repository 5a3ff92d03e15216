package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"restoflow/entity"
)

// SeedAdmin creates the HQ tenant and the root account on first boot.
// A fresh database would otherwise have no way to log in.
func SeedAdmin(cfg *Config) error {
	var count int64
	db.Model(&entity.User{}).Where("role = ?", entity.RoleSuperAdmin).Count(&count)
	if count > 0 {
		log.Println("super admin already exists, skipping seed")
		return nil
	}

	hq := entity.Restaurant{
		Name:     "RestoFlow Cloud HQ",
		Address:  "Global SaaS Infrastructure",
		Currency: "$",
		TaxRate:  decimal.Zero,
		Plan:     entity.PlanEnterprise,
	}
	if err := db.Create(&hq).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	root := entity.User{
		Name:         "System Root",
		Email:        cfg.SeedAdminEmail,
		Password:     string(hash),
		Role:         entity.RoleSuperAdmin,
		RestaurantID: &hq.ID,
	}
	if err := db.Create(&root).Error; err != nil {
		return err
	}

	log.Printf("seeded super admin %s", root.Email)
	return nil
}

// SeedDemo provisions one demo tenant with a small catalog so a fresh
// install can place orders immediately.
func SeedDemo() error {
	var count int64
	db.Model(&entity.Restaurant{}).Where("name = ?", "Demo Diner").Count(&count)
	if count > 0 {
		return nil
	}

	demo := entity.Restaurant{
		Name:     "Demo Diner",
		Address:  "1 Demo Street",
		Currency: "$",
		TaxRate:  decimal.NewFromFloat(0.1),
		Plan:     entity.PlanBasic,
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	mains := entity.Category{Name: "Mains", RestaurantID: demo.ID}
	drinks := entity.Category{Name: "Drinks", RestaurantID: demo.ID}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	items := []entity.Item{
		{Name: "Classic Burger", Price: decimal.NewFromFloat(10.00), Stock: 40, Available: true, CategoryID: mains.ID, RestaurantID: demo.ID},
		{Name: "Margherita Pizza", Price: decimal.NewFromFloat(12.50), Stock: 25, Available: true, CategoryID: mains.ID, RestaurantID: demo.ID},
		{Name: "Iced Tea", Price: decimal.NewFromFloat(2.50), Stock: 80, Available: true, CategoryID: drinks.ID, RestaurantID: demo.ID},
		{Name: "Espresso", Price: decimal.NewFromFloat(3.00), Stock: 60, Available: true, CategoryID: drinks.ID, RestaurantID: demo.ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("cashier123"), bcrypt.DefaultCost)
	cashier := entity.User{
		Name:         "Demo Cashier",
		Email:        "cashier@demo.local",
		Password:     string(hash),
		Role:         entity.RoleCashier,
		RestaurantID: &demo.ID,
	}
	return db.Create(&cashier).Error
}
