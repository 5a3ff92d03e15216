package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restoflow/entity"
	"restoflow/repository"
	"restoflow/utils"
)

const testSecret = "test-secret"

func seedCashier(t *testing.T, db *gorm.DB, restaurantID uint, email, password string) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	u := entity.User{
		Name:         "Test Cashier",
		Email:        email,
		Password:     string(hash),
		Role:         entity.RoleCashier,
		RestaurantID: &restaurantID,
	}
	assert.NoError(t, db.Create(&u).Error)
	return u
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), repository.NewRestaurantRepository(db), testSecret, time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	cashier := seedCashier(t, db, rest.ID, "cashier@demo.local", "cashier123")
	svc := newAuthService(db)

	token, user, restaurant, err := svc.Login("cashier@demo.local", "cashier123")
	assert.NoError(t, err)
	assert.Equal(t, cashier.ID, user.ID)
	assert.Equal(t, rest.ID, restaurant.ID)

	claims, err := utils.ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, cashier.ID, claims.UserID)
	assert.Equal(t, entity.RoleCashier, claims.Role)
	assert.Equal(t, rest.ID, claims.RestaurantID)
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	seedCashier(t, db, rest.ID, "cashier@demo.local", "cashier123")
	svc := newAuthService(db)

	_, _, _, err := svc.Login("  Cashier@Demo.Local ", "cashier123")
	assert.NoError(t, err)
}

func TestAuthService_Login_Rejections(t *testing.T) {
	db := testDB(t)
	rest := seedRestaurant(t, db)
	seedCashier(t, db, rest.ID, "cashier@demo.local", "cashier123")
	svc := newAuthService(db)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "cashier@demo.local", "nope"},
		{"unknown email", "ghost@demo.local", "cashier123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_SuperAdminHasNoHomeTenant(t *testing.T) {
	db := testDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	root := entity.User{Name: "System Root", Email: "superadmin@gmail.com", Password: string(hash), Role: entity.RoleSuperAdmin}
	assert.NoError(t, db.Create(&root).Error)
	svc := newAuthService(db)

	token, _, restaurant, err := svc.Login("superadmin@gmail.com", "password123")
	assert.NoError(t, err)
	assert.Nil(t, restaurant)

	claims, err := utils.ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Zero(t, claims.RestaurantID)
}
