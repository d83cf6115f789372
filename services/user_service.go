package services

import (
	"github.com/google/uuid"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// UserService handles user profile management. Authentication itself is
// delegated to the identity provider; these are the profile records the
// API exposes.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all user profiles
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve users", err)
	}
	return users, nil
}

// GetUser returns a single user profile
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, mapStoreError(err, "User", "Failed to fetch user")
	}
	return user, nil
}

// CreateUser creates a user profile
func (s *UserService) CreateUser(req *models.CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleOwner {
		return nil, utils.NewValidationError("role must be customer or owner")
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  role,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, utils.NewUpstreamError("Failed to store user", err)
	}
	return user, nil
}

// UpdateUser updates a user profile
func (s *UserService) UpdateUser(id string, req *models.UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateRequired(req.Email, "email"); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, mapStoreError(err, "User", "Failed to fetch user")
	}

	user.Email = req.Email
	user.Name = req.Name
	user.Phone = req.Phone

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, mapStoreError(err, "User", "Failed to update user")
	}
	return user, nil
}

// DeleteUser removes a user profile
func (s *UserService) DeleteUser(id string) error {
	if err := s.userRepo.DeleteUser(id); err != nil {
		return mapStoreError(err, "User", "Failed to delete user")
	}
	return nil
}
