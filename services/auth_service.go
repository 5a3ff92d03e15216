package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"restoflow/entity"
	"restoflow/repository"
	"restoflow/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles login and token issuance.
type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		restRepo:  restRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login verifies the password and returns a token plus the user's home
// restaurant, which the client uses as its active tenant after login.
func (s *AuthService) Login(email, password string) (string, *entity.User, *entity.Restaurant, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, nil, ErrInvalidCredentials
	}

	var restaurantID uint
	if user.RestaurantID != nil {
		restaurantID = *user.RestaurantID
	}
	token, err := utils.GenerateToken(user.ID, user.Role, restaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, nil, errors.New("cannot generate token")
	}

	var rest *entity.Restaurant
	if restaurantID != 0 {
		rest, _ = s.restRepo.FindByID(restaurantID)
	}

	return token, user, rest, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
