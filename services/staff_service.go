package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"restoflow/entity"
	"restoflow/repository"
)

// StaffService backs the staff screen: the tenant's cashier and admin
// accounts.
type StaffService struct {
	UserRepo *repository.UserRepository
}

func NewStaffService(userRepo *repository.UserRepository) *StaffService {
	return &StaffService{UserRepo: userRepo}
}

func (s *StaffService) List(restaurantID uint) ([]entity.User, error) {
	return s.UserRepo.ListByRestaurant(restaurantID)
}

type CreateStaffIn struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func (s *StaffService) Create(restaurantID uint, in *CreateStaffIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	role := in.Role
	switch role {
	case "":
		role = entity.RoleCashier
	case entity.RoleCashier, entity.RoleRestaurantAdmin:
	default:
		// staff screens never mint SUPER_ADMIN accounts
		return nil, errors.New("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Password:     string(hash),
		Role:         role,
		RestaurantID: &restaurantID,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
