// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/klubapp/klub-backend/models"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListUsers returns all user profiles
func (r *UserRepository) ListUsers() ([]models.User, error) {
	rows, err := r.db.Query(
		`SELECT id, email, name, phone, role, created_at FROM profiles ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a user profile by its ID
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	row := r.db.QueryRow(
		`SELECT id, email, name, phone, role, created_at FROM profiles WHERE id = $1`,
		id,
	)

	var user models.User
	if err := scanUser(row, &user); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// CreateUser inserts a user profile
func (r *UserRepository) CreateUser(user *models.User) error {
	user.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, email, name, phone, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Phone, user.Role, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// UpdateUser updates a user profile; returns sql.ErrNoRows if absent
func (r *UserRepository) UpdateUser(user *models.User) error {
	result, err := r.db.Exec(
		`UPDATE profiles SET email = $2, name = $3, phone = $4 WHERE id = $1`,
		user.ID, user.Email, user.Name, user.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %v", err)
	}
	return requireRowAffected(result)
}

// DeleteUser removes a user profile; returns sql.ErrNoRows if absent
func (r *UserRepository) DeleteUser(id string) error {
	result, err := r.db.Exec("DELETE FROM profiles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %v", err)
	}
	return requireRowAffected(result)
}

func scanUser(row rowScanner, user *models.User) error {
	var name, phone, role sql.NullString
	err := row.Scan(&user.ID, &user.Email, &name, &phone, &role, &user.CreatedAt)
	if err != nil {
		return err
	}
	user.Name = name.String
	user.Phone = phone.String
	user.Role = role.String
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	return nil
}
