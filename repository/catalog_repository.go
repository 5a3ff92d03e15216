package repository

import (
	"gorm.io/gorm"

	"restoflow/entity"
)

// CatalogRepository covers the per-tenant items and categories the POS
// terminal and the inventory screen read and write.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Items ----------------

func (r *CatalogRepository) ListItems(restaurantID uint) ([]entity.Item, error) {
	var out []entity.Item
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetItem(restaurantID, itemID uint) (*entity.Item, error) {
	var it entity.Item
	err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CatalogRepository) CreateItem(it *entity.Item) error {
	return r.DB.Create(it).Error
}

func (r *CatalogRepository) UpdateItem(restaurantID, itemID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Item{}).
		Where("id = ? AND restaurant_id = ?", itemID, restaurantID).
		Updates(updates).Error
}

func (r *CatalogRepository) DeleteItem(restaurantID, itemID uint) error {
	return r.DB.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).
		Delete(&entity.Item{}).Error
}

// DecrementStock subtracts sold quantity inside tx, floored at zero.
// The server is the source of truth for stock; terminals never compute
// the decrement locally.
func (r *CatalogRepository) DecrementStock(tx *gorm.DB, restaurantID, itemID uint, qty int) error {
	return tx.Model(&entity.Item{}).
		Where("id = ? AND restaurant_id = ?", itemID, restaurantID).
		Update("stock", gorm.Expr("CASE WHEN stock > ? THEN stock - ? ELSE 0 END", qty, qty)).Error
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories(restaurantID uint) ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) CategoryBelongsTo(restaurantID, categoryID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).
		Where("id = ? AND restaurant_id = ?", categoryID, restaurantID).
		Count(&count).Error
	return count > 0, err
}
