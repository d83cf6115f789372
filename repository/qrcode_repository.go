// repository/qrcode_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/klubapp/klub-backend/models"
)

// QRCodeRepository handles database operations for table QR codes
type QRCodeRepository struct {
	db *sql.DB
}

// NewQRCodeRepository creates a new QRCodeRepository
func NewQRCodeRepository(db *sql.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

// CreateQRCode inserts a QR code record. Records are immutable once created.
func (r *QRCodeRepository) CreateQRCode(code *models.QRCode) error {
	_, err := r.db.Exec(
		`INSERT INTO qr_codes (id, restaurant_id, table_number, created_at)
		 VALUES ($1, $2, $3, $4)`,
		code.ID, code.RestaurantID, code.TableNumber, code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert qr code: %v", err)
	}
	return nil
}

// ListQRCodesByRestaurant returns all QR codes for a restaurant
func (r *QRCodeRepository) ListQRCodesByRestaurant(restaurantID string) ([]models.QRCode, error) {
	rows, err := r.db.Query(
		`SELECT id, restaurant_id, table_number, created_at
		 FROM qr_codes WHERE restaurant_id = $1 ORDER BY table_number`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %v", err)
	}
	defer rows.Close()

	codes := []models.QRCode{}
	for rows.Next() {
		var code models.QRCode
		if err := rows.Scan(&code.ID, &code.RestaurantID, &code.TableNumber, &code.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan qr code: %v", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
