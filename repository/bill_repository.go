// repository/bill_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/klubapp/klub-backend/models"
)

// BillRepository handles database operations for bills, bill items,
// participants, and item assignments.
type BillRepository struct {
	db *sql.DB
}

// NewBillRepository creates a new BillRepository
func NewBillRepository(db *sql.DB) *BillRepository {
	return &BillRepository{db: db}
}

// ListBills returns all bills
func (r *BillRepository) ListBills() ([]models.Bill, error) {
	rows, err := r.db.Query(
		`SELECT id, restaurant_id, table_number, total_amount, status, created_at
		 FROM bills ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %v", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

// ListBillsByRestaurant returns all bills for a restaurant
func (r *BillRepository) ListBillsByRestaurant(restaurantID string) ([]models.Bill, error) {
	rows, err := r.db.Query(
		`SELECT id, restaurant_id, table_number, total_amount, status, created_at
		 FROM bills WHERE restaurant_id = $1 ORDER BY created_at`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %v", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

// ListOpenBillsForTable returns open bills at one restaurant table, used to
// resolve a scanned QR payload to a joinable bill.
func (r *BillRepository) ListOpenBillsForTable(restaurantID string, tableNumber int) ([]models.Bill, error) {
	rows, err := r.db.Query(
		`SELECT id, restaurant_id, table_number, total_amount, status, created_at
		 FROM bills
		 WHERE restaurant_id = $1 AND table_number = $2 AND status = $3
		 ORDER BY created_at`,
		restaurantID, tableNumber, models.BillStatusOpen,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list open bills: %v", err)
	}
	defer rows.Close()
	return collectBills(rows)
}

// GetBillByID retrieves a bill by its ID
func (r *BillRepository) GetBillByID(id string) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.QueryRow(
		`SELECT id, restaurant_id, table_number, total_amount, status, created_at
		 FROM bills WHERE id = $1`,
		id,
	).Scan(&bill.ID, &bill.RestaurantID, &bill.TableNumber, &bill.TotalAmount,
		&bill.Status, &bill.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get bill: %v", err)
	}
	return &bill, nil
}

// CreateBill inserts a bill together with its initial items, recomputing the
// stored total from the items inside one transaction.
func (r *BillRepository) CreateBill(bill *models.Bill, items []models.BillItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO bills (id, restaurant_id, table_number, total_amount, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		bill.ID, bill.RestaurantID, bill.TableNumber, bill.TotalAmount, bill.Status, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %v", err)
	}

	for _, item := range items {
		if err := insertBillItem(tx, &item); err != nil {
			return err
		}
	}

	total, err := recomputeBillTotal(tx, bill.ID)
	if err != nil {
		return err
	}
	bill.TotalAmount = total

	return tx.Commit()
}

// UpdateBill updates a bill's table number and status; returns sql.ErrNoRows
// if absent.
func (r *BillRepository) UpdateBill(bill *models.Bill) error {
	result, err := r.db.Exec(
		`UPDATE bills SET table_number = $2, status = $3 WHERE id = $1`,
		bill.ID, bill.TableNumber, bill.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %v", err)
	}
	return requireRowAffected(result)
}

// DeleteBill removes a bill and its dependents; returns sql.ErrNoRows if absent
func (r *BillRepository) DeleteBill(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM bill_item_assignments
		 WHERE item_id IN (SELECT id FROM bill_items WHERE bill_id = $1)`, id); err != nil {
		return fmt.Errorf("failed to delete item assignments: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM bill_items WHERE bill_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bill items: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM bill_participants WHERE bill_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bill participants: %v", err)
	}
	if _, err := tx.Exec(`DELETE FROM payments WHERE bill_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payments: %v", err)
	}

	result, err := tx.Exec(`DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %v", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	return tx.Commit()
}

// ListBillItems returns a bill's items with their assigned participant sets
func (r *BillRepository) ListBillItems(billID string) ([]models.BillItem, error) {
	rows, err := r.db.Query(
		`SELECT id, bill_id, name, price, quantity FROM bill_items
		 WHERE bill_id = $1 ORDER BY id`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill items: %v", err)
	}
	defer rows.Close()

	items := []models.BillItem{}
	for rows.Next() {
		var item models.BillItem
		if err := rows.Scan(&item.ID, &item.BillID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan bill item: %v", err)
		}
		item.AssignedTo = []string{}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignRows, err := r.db.Query(
		`SELECT a.item_id, a.participant_id
		 FROM bill_item_assignments a
		 JOIN bill_items i ON i.id = a.item_id
		 WHERE i.bill_id = $1`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list item assignments: %v", err)
	}
	defer assignRows.Close()

	assigned := make(map[string][]string)
	for assignRows.Next() {
		var itemID, participantID string
		if err := assignRows.Scan(&itemID, &participantID); err != nil {
			return nil, fmt.Errorf("failed to scan item assignment: %v", err)
		}
		assigned[itemID] = append(assigned[itemID], participantID)
	}
	if err := assignRows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		if ids, ok := assigned[items[i].ID]; ok {
			items[i].AssignedTo = ids
		}
	}
	return items, nil
}

// AddBillItems inserts items and recomputes the bill total in one
// transaction. Returns the new total.
func (r *BillRepository) AddBillItems(billID string, items []models.BillItem) (float64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		if err := insertBillItem(tx, &item); err != nil {
			return 0, err
		}
	}

	total, err := recomputeBillTotal(tx, billID)
	if err != nil {
		return 0, err
	}
	return total, tx.Commit()
}

// ListParticipants returns a bill's participants in join order. The first
// participant is the bill's owner.
func (r *BillRepository) ListParticipants(billID string) ([]models.Participant, error) {
	rows, err := r.db.Query(
		`SELECT id, bill_id, name, email, created_at FROM bill_participants
		 WHERE bill_id = $1 ORDER BY created_at`,
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %v", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		var email sql.NullString
		if err := rows.Scan(&p.ID, &p.BillID, &p.Name, &email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %v", err)
		}
		p.Email = email.String
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// AddParticipant inserts a participant on a bill
func (r *BillRepository) AddParticipant(p *models.Participant) error {
	_, err := r.db.Exec(
		`INSERT INTO bill_participants (id, bill_id, name, email, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.BillID, p.Name, p.Email, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %v", err)
	}
	return nil
}

// RemoveParticipant deletes a participant and cascades the removal of all of
// that participant's item assignments in the same transaction. Returns
// sql.ErrNoRows if the participant does not exist on the bill.
func (r *BillRepository) RemoveParticipant(billID, participantID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM bill_item_assignments WHERE participant_id = $1`, participantID); err != nil {
		return fmt.Errorf("failed to delete participant assignments: %v", err)
	}

	result, err := tx.Exec(
		`DELETE FROM bill_participants WHERE id = $1 AND bill_id = $2`,
		participantID, billID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %v", err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}
	return tx.Commit()
}

// SetItemAssignments replaces an item's assigned participant set. Returns
// sql.ErrNoRows if the item does not belong to the bill.
func (r *BillRepository) SetItemAssignments(billID, itemID string, participantIDs []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var owned string
	err = tx.QueryRow(
		`SELECT id FROM bill_items WHERE id = $1 AND bill_id = $2`, itemID, billID,
	).Scan(&owned)
	if err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to check bill item: %v", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM bill_item_assignments WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to clear item assignments: %v", err)
	}
	for _, participantID := range participantIDs {
		if _, err := tx.Exec(
			`INSERT INTO bill_item_assignments (item_id, participant_id) VALUES ($1, $2)`,
			itemID, participantID,
		); err != nil {
			return fmt.Errorf("failed to insert item assignment: %v", err)
		}
	}
	return tx.Commit()
}

func insertBillItem(tx *sql.Tx, item *models.BillItem) error {
	_, err := tx.Exec(
		`INSERT INTO bill_items (id, bill_id, name, price, quantity)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.BillID, item.Name, item.Price, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill item: %v", err)
	}
	return nil
}

// recomputeBillTotal derives the bill total from its items and persists it.
// Must run inside the same transaction as the item mutation so the bill
// never exposes a stale total.
func recomputeBillTotal(tx *sql.Tx, billID string) (float64, error) {
	var total float64
	err := tx.QueryRow(
		`SELECT COALESCE(SUM(price * quantity), 0) FROM bill_items WHERE bill_id = $1`,
		billID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum bill items: %v", err)
	}

	if _, err := tx.Exec(
		`UPDATE bills SET total_amount = $2 WHERE id = $1`, billID, total); err != nil {
		return 0, fmt.Errorf("failed to update bill total: %v", err)
	}
	return total, nil
}

func collectBills(rows *sql.Rows) ([]models.Bill, error) {
	bills := []models.Bill{}
	for rows.Next() {
		var bill models.Bill
		if err := rows.Scan(&bill.ID, &bill.RestaurantID, &bill.TableNumber,
			&bill.TotalAmount, &bill.Status, &bill.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %v", err)
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}
