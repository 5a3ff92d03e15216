package services

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restoflow/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&entity.Restaurant{},
		&entity.Category{},
		&entity.Item{},
		&entity.User{},
		&entity.Order{},
		&entity.OrderLine{},
	)
	assert.NoError(t, err)
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB) entity.Restaurant {
	t.Helper()
	rest := entity.Restaurant{Name: "Demo Diner", Currency: "$", TaxRate: decimal.NewFromFloat(0.1)}
	assert.NoError(t, db.Create(&rest).Error)
	return rest
}

func seedItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64, stock int) entity.Item {
	t.Helper()
	cat := entity.Category{Name: "Mains", RestaurantID: restaurantID}
	assert.NoError(t, db.Create(&cat).Error)
	it := entity.Item{
		Name:         name,
		Price:        decimal.NewFromFloat(price),
		Stock:        stock,
		Available:    true,
		CategoryID:   cat.ID,
		RestaurantID: restaurantID,
	}
	assert.NoError(t, db.Create(&it).Error)
	return it
}
