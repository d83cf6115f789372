// repository/restaurant_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/klubapp/klub-backend/models"
)

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db *sql.DB
}

// NewRestaurantRepository creates a new RestaurantRepository
func NewRestaurantRepository(db *sql.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// ListRestaurants returns all restaurants
func (r *RestaurantRepository) ListRestaurants() ([]models.Restaurant, error) {
	rows, err := r.db.Query(
		`SELECT id, name, address, phone, cuisine, description, created_at, updated_at
		 FROM restaurants ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %v", err)
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		var rest models.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// GetRestaurantByID retrieves a restaurant by its ID
func (r *RestaurantRepository) GetRestaurantByID(id string) (*models.Restaurant, error) {
	row := r.db.QueryRow(
		`SELECT id, name, address, phone, cuisine, description, created_at, updated_at
		 FROM restaurants WHERE id = $1`,
		id,
	)

	var rest models.Restaurant
	if err := scanRestaurant(row, &rest); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get restaurant: %v", err)
	}
	return &rest, nil
}

// CreateRestaurant inserts a restaurant and returns it with timestamps set
func (r *RestaurantRepository) CreateRestaurant(rest *models.Restaurant) error {
	now := time.Now().UTC()
	rest.CreatedAt = now
	rest.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO restaurants (id, name, address, phone, cuisine, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rest.ID, rest.Name, rest.Address, rest.Phone, rest.Cuisine, rest.Description,
		rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %v", err)
	}
	return nil
}

// UpdateRestaurant updates a restaurant; returns sql.ErrNoRows if absent
func (r *RestaurantRepository) UpdateRestaurant(rest *models.Restaurant) error {
	rest.UpdatedAt = time.Now().UTC()

	result, err := r.db.Exec(
		`UPDATE restaurants
		 SET name = $2, address = $3, phone = $4, cuisine = $5, description = $6, updated_at = $7
		 WHERE id = $1`,
		rest.ID, rest.Name, rest.Address, rest.Phone, rest.Cuisine, rest.Description, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %v", err)
	}
	return requireRowAffected(result)
}

// DeleteRestaurant removes a restaurant; returns sql.ErrNoRows if absent
func (r *RestaurantRepository) DeleteRestaurant(id string) error {
	result, err := r.db.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %v", err)
	}
	return requireRowAffected(result)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner, rest *models.Restaurant) error {
	var address, phone, cuisine, description sql.NullString
	err := row.Scan(&rest.ID, &rest.Name, &address, &phone, &cuisine, &description,
		&rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return err
	}
	rest.Address = address.String
	rest.Phone = phone.String
	rest.Cuisine = cuisine.String
	rest.Description = description.String
	return nil
}

// requireRowAffected maps a zero-row write to sql.ErrNoRows
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %v", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
