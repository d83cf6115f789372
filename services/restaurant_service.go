package services

import (
	"github.com/google/uuid"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// RestaurantService handles restaurant management
type RestaurantService struct {
	restaurantRepo *repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurantRepo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// ListRestaurants returns all restaurants
func (s *RestaurantService) ListRestaurants() ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListRestaurants()
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve restaurants", err)
	}
	return restaurants, nil
}

// GetRestaurant returns a single restaurant
func (s *RestaurantService) GetRestaurant(id string) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetRestaurantByID(id)
	if err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}
	return restaurant, nil
}

// CreateRestaurant creates a restaurant
func (s *RestaurantService) CreateRestaurant(req *models.CreateRestaurantRequest) (*models.Restaurant, error) {
	if err := utils.ValidateRequired(req.Name, "restaurant name"); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Cuisine:     req.Cuisine,
		Description: req.Description,
	}
	if err := s.restaurantRepo.CreateRestaurant(restaurant); err != nil {
		return nil, utils.NewUpstreamError("Failed to store restaurant", err)
	}
	return restaurant, nil
}

// UpdateRestaurant updates a restaurant
func (s *RestaurantService) UpdateRestaurant(id string, req *models.UpdateRestaurantRequest) (*models.Restaurant, error) {
	if err := utils.ValidateRequired(req.Name, "restaurant name"); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.GetRestaurantByID(id)
	if err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone
	restaurant.Cuisine = req.Cuisine
	restaurant.Description = req.Description

	if err := s.restaurantRepo.UpdateRestaurant(restaurant); err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to update restaurant")
	}
	return restaurant, nil
}

// DeleteRestaurant removes a restaurant
func (s *RestaurantService) DeleteRestaurant(id string) error {
	if err := s.restaurantRepo.DeleteRestaurant(id); err != nil {
		return mapStoreError(err, "Restaurant", "Failed to delete restaurant")
	}
	return nil
}
