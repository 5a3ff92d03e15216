package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restoflow/entity"
	"restoflow/repository"
)

var ErrTenantNotFound = errors.New("restaurant not found")

// TenantService manages restaurants from the super-admin console.
// Creating a tenant also provisions its RESTAURANT_ADMIN account so a
// new restaurant is usable the moment it appears.
type TenantService struct {
	DB       *gorm.DB
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewTenantService(db *gorm.DB, restRepo *repository.RestaurantRepository, userRepo *repository.UserRepository) *TenantService {
	return &TenantService{DB: db, RestRepo: restRepo, UserRepo: userRepo}
}

type CreateTenantIn struct {
	Name          string
	Address       string
	Currency      string
	TaxRate       decimal.Decimal
	Plan          string
	Logo          string
	AdminEmail    string
	AdminPassword string
}

func (s *TenantService) List() ([]entity.Restaurant, error) {
	return s.RestRepo.List()
}

func (s *TenantService) Get(id uint) (*entity.Restaurant, error) {
	return s.RestRepo.FindByID(id)
}

func (s *TenantService) Create(in *CreateTenantIn) (*entity.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name is required")
	}
	if in.TaxRate.IsNegative() {
		return nil, errors.New("taxRate must be non-negative")
	}

	adminEmail := strings.ToLower(strings.TrimSpace(in.AdminEmail))
	count, err := s.UserRepo.CountByEmail(adminEmail)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("admin email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rest := &entity.Restaurant{
		Name:     strings.TrimSpace(in.Name),
		Address:  in.Address,
		Currency: in.Currency,
		TaxRate:  in.TaxRate,
		Plan:     in.Plan,
		Logo:     in.Logo,
	}
	if rest.Currency == "" {
		rest.Currency = "$"
	}
	if rest.Plan == "" {
		rest.Plan = entity.PlanBasic
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.RestRepo.Create(tx, rest); err != nil {
			return err
		}
		admin := entity.User{
			Name:         rest.Name + " Admin",
			Email:        adminEmail,
			Password:     string(hash),
			Role:         entity.RoleRestaurantAdmin,
			RestaurantID: &rest.ID,
		}
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

type UpdateTenantIn struct {
	Name          string
	Address       string
	Currency      string
	TaxRate       *decimal.Decimal
	Plan          string
	Logo          string
	AdminEmail    string
	AdminPassword string
}

func (s *TenantService) Update(id uint, in *UpdateTenantIn) (*entity.Restaurant, error) {
	ok, err := s.RestRepo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTenantNotFound
	}

	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Address != "" {
		updates["address"] = in.Address
	}
	if in.Currency != "" {
		updates["currency"] = in.Currency
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, errors.New("taxRate must be non-negative")
		}
		updates["tax_rate"] = *in.TaxRate
	}
	if in.Plan != "" {
		updates["plan"] = in.Plan
	}
	if in.Logo != "" {
		updates["logo"] = in.Logo
	}
	if len(updates) > 0 {
		if err := s.RestRepo.Update(id, updates); err != nil {
			return nil, err
		}
	}

	// admin credential rotation rides along with a tenant edit
	if in.AdminEmail != "" || in.AdminPassword != "" {
		admin, err := s.UserRepo.FindAdminByRestaurant(id)
		if err == nil {
			userUpdates := map[string]any{}
			if in.AdminEmail != "" {
				userUpdates["email"] = strings.ToLower(strings.TrimSpace(in.AdminEmail))
			}
			if in.AdminPassword != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
				if err != nil {
					return nil, err
				}
				userUpdates["password"] = string(hash)
			}
			if in.Name != "" {
				userUpdates["name"] = strings.TrimSpace(in.Name) + " Admin"
			}
			if err := s.UserRepo.Update(admin.ID, userUpdates); err != nil {
				return nil, err
			}
		}
	}

	return s.RestRepo.FindByID(id)
}

// GetAdmin returns the tenant's admin account for the edit form.
func (s *TenantService) GetAdmin(restaurantID uint) (*entity.User, error) {
	return s.UserRepo.FindAdminByRestaurant(restaurantID)
}
