package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restoflow/entity"
	"restoflow/repository"
)

func newCatalogService(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCatalogService(repository.NewCatalogRepository(db), repository.NewCatalogCache(client, time.Minute))
}

func TestCatalogService_CreateItem(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	svc := newCatalogService(t, db)
	cat, err := svc.CreateCategory(rest.ID, "Drinks")
	assert.NoError(t, err)

	it, err := svc.CreateItem(context.Background(), rest.ID, &ItemIn{
		Name: " Iced Tea ", Price: d("3.50"), Stock: 12, Available: true, CategoryID: cat.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Iced Tea", it.Name, "name is trimmed")
	assert.NotZero(t, it.ID)
}

func TestCatalogService_CreateItem_RejectsForeignCategory(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	other := seedRestaurant(t, db)
	svc := newCatalogService(t, db)
	foreign, err := svc.CreateCategory(other.ID, "Drinks")
	assert.NoError(t, err)

	_, err = svc.CreateItem(context.Background(), rest.ID, &ItemIn{
		Name: "Iced Tea", Price: d("3.50"), Available: true, CategoryID: foreign.ID,
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCatalogService_ListItems_ReadThroughCache(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	svc := newCatalogService(t, db)
	it := seedItem(t, db, rest.ID, "Burger", 10.00, 5)

	first, err := svc.ListItems(context.Background(), rest.ID)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// a direct DB write the cache has not seen is invisible until
	// something invalidates
	assert.NoError(t, db.Model(&entity.Item{}).Where("id = ?", it.ID).Update("stock", 99).Error)
	cached, err := svc.ListItems(context.Background(), rest.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, cached[0].Stock)

	// write through the service drops the entry
	_, err = svc.UpdateItem(context.Background(), rest.ID, it.ID, &ItemIn{
		Name: "Burger", Price: d("10.00"), Stock: 3, Available: true, CategoryID: it.CategoryID,
	})
	assert.NoError(t, err)
	fresh, err := svc.ListItems(context.Background(), rest.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, fresh[0].Stock)
}

func TestCatalogService_DeleteItem(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	svc := newCatalogService(t, db)
	it := seedItem(t, db, rest.ID, "Burger", 10.00, 5)

	assert.NoError(t, svc.DeleteItem(context.Background(), rest.ID, it.ID))
	assert.ErrorIs(t, svc.DeleteItem(context.Background(), rest.ID, it.ID), ErrItemNotFound)

	items, err := svc.ListItems(context.Background(), rest.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_UpdateItem_UnknownItem(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	svc := newCatalogService(t, db)

	_, err := svc.UpdateItem(context.Background(), rest.ID, 999, &ItemIn{Name: "x", CategoryID: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalogService_ItemsAreTenantScoped(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	other := seedRestaurant(t, db)
	svc := newCatalogService(t, db)
	seedItem(t, db, rest.ID, "Burger", 10.00, 5)
	seedItem(t, db, other.ID, "Pizza", 12.00, 5)

	items, err := svc.ListItems(context.Background(), rest.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
}
