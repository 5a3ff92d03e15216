package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"restoflow/entity"
	"restoflow/repository"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidCategory = errors.New("category not in this restaurant")
)

// CatalogService is the inventory screen's backend: item and category
// CRUD, read-through item cache.
type CatalogService struct {
	Repo  *repository.CatalogRepository
	Cache *repository.CatalogCache
}

func NewCatalogService(repo *repository.CatalogRepository, cache *repository.CatalogCache) *CatalogService {
	return &CatalogService{Repo: repo, Cache: cache}
}

func (s *CatalogService) ListItems(ctx context.Context, restaurantID uint) ([]entity.Item, error) {
	if items, ok := s.Cache.GetItems(ctx, restaurantID); ok {
		return items, nil
	}
	items, err := s.Repo.ListItems(restaurantID)
	if err != nil {
		return nil, err
	}
	_ = s.Cache.SetItems(ctx, restaurantID, items)
	return items, nil
}

type ItemIn struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Stock      int             `json:"stock"`
	Available  bool            `json:"available"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

func (s *CatalogService) validateItem(restaurantID uint, in *ItemIn) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if in.Price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	if in.Stock < 0 {
		return errors.New("stock must be non-negative")
	}
	ok, err := s.Repo.CategoryBelongsTo(restaurantID, in.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCategory
	}
	return nil
}

func (s *CatalogService) CreateItem(ctx context.Context, restaurantID uint, in *ItemIn) (*entity.Item, error) {
	if err := s.validateItem(restaurantID, in); err != nil {
		return nil, err
	}
	it := &entity.Item{
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Image:        in.Image,
		Stock:        in.Stock,
		Available:    in.Available,
		CategoryID:   in.CategoryID,
		RestaurantID: restaurantID,
	}
	if err := s.Repo.CreateItem(it); err != nil {
		return nil, err
	}
	_ = s.Cache.Invalidate(ctx, restaurantID)
	return it, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, restaurantID, itemID uint, in *ItemIn) (*entity.Item, error) {
	if _, err := s.Repo.GetItem(restaurantID, itemID); err != nil {
		return nil, ErrItemNotFound
	}
	if err := s.validateItem(restaurantID, in); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"price":       in.Price,
		"image":       in.Image,
		"stock":       in.Stock,
		"available":   in.Available,
		"category_id": in.CategoryID,
	}
	if err := s.Repo.UpdateItem(restaurantID, itemID, updates); err != nil {
		return nil, err
	}
	_ = s.Cache.Invalidate(ctx, restaurantID)
	return s.Repo.GetItem(restaurantID, itemID)
}

func (s *CatalogService) DeleteItem(ctx context.Context, restaurantID, itemID uint) error {
	if _, err := s.Repo.GetItem(restaurantID, itemID); err != nil {
		return ErrItemNotFound
	}
	if err := s.Repo.DeleteItem(restaurantID, itemID); err != nil {
		return err
	}
	return s.Cache.Invalidate(ctx, restaurantID)
}

func (s *CatalogService) ListCategories(restaurantID uint) ([]entity.Category, error) {
	return s.Repo.ListCategories(restaurantID)
}

func (s *CatalogService) CreateCategory(restaurantID uint, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	cat := &entity.Category{Name: strings.TrimSpace(name), RestaurantID: restaurantID}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}
