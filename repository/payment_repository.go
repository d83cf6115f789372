// repository/payment_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/klubapp/klub-backend/models"
)

// PaymentRepository handles payment data operations. The completed-sum
// versus bill-total comparison is a classic check-then-act race when done
// as separate reads and writes, so every write that can flip a bill to
// paid runs inside one transaction holding a row lock on the bill.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// ListPayments returns all payments
func (r *PaymentRepository) ListPayments() ([]models.Payment, error) {
	return r.queryPayments(
		`SELECT id, bill_id, user_id, amount, payment_method, status, created_at
		 FROM payments ORDER BY created_at`)
}

// ListPaymentsByBill returns all payments for a bill
func (r *PaymentRepository) ListPaymentsByBill(billID string) ([]models.Payment, error) {
	return r.queryPayments(
		`SELECT id, bill_id, user_id, amount, payment_method, status, created_at
		 FROM payments WHERE bill_id = $1 ORDER BY created_at`, billID)
}

// ListPaymentsByUser returns all payments submitted by a user
func (r *PaymentRepository) ListPaymentsByUser(userID string) ([]models.Payment, error) {
	return r.queryPayments(
		`SELECT id, bill_id, user_id, amount, payment_method, status, created_at
		 FROM payments WHERE user_id = $1 ORDER BY created_at`, userID)
}

// GetPaymentByID retrieves a payment by its ID
func (r *PaymentRepository) GetPaymentByID(id string) (*models.Payment, error) {
	row := r.db.QueryRow(
		`SELECT id, bill_id, user_id, amount, payment_method, status, created_at
		 FROM payments WHERE id = $1`,
		id,
	)

	var payment models.Payment
	if err := scanPayment(row, &payment); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to get payment: %v", err)
	}
	return &payment, nil
}

// CreateAndReconcile inserts a payment and, if it completes the bill, marks
// the bill paid, all in one transaction. Returns the bill status after the
// write. The payment amount is recorded as submitted; overpayment is
// accepted and never capped here.
func (r *PaymentRepository) CreateAndReconcile(payment *models.Payment) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, _, err := lockBill(tx, payment.BillID); err != nil {
		return "", err
	}

	userID := sql.NullString{String: payment.UserID, Valid: payment.UserID != ""}
	_, err = tx.Exec(
		`INSERT INTO payments (id, bill_id, user_id, amount, payment_method, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		payment.ID, payment.BillID, userID, payment.Amount, payment.PaymentMethod,
		payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert payment: %v", err)
	}

	status, err := reconcileBill(tx, payment.BillID)
	if err != nil {
		return "", err
	}
	return status, tx.Commit()
}

// UpdateAndReconcile updates a payment's amount, method, and status, then
// re-runs the paid check, all in one transaction. A payment moved from
// pending to completed can flip the bill to paid here. Returns the bill
// status after the write, or sql.ErrNoRows if the payment is absent.
func (r *PaymentRepository) UpdateAndReconcile(payment *models.Payment) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, _, err := lockBill(tx, payment.BillID); err != nil {
		return "", err
	}

	result, err := tx.Exec(
		`UPDATE payments SET amount = $2, payment_method = $3, status = $4 WHERE id = $1`,
		payment.ID, payment.Amount, payment.PaymentMethod, payment.Status,
	)
	if err != nil {
		return "", fmt.Errorf("failed to update payment: %v", err)
	}
	if err := requireRowAffected(result); err != nil {
		return "", err
	}

	status, err := reconcileBill(tx, payment.BillID)
	if err != nil {
		return "", err
	}
	return status, tx.Commit()
}

// DeletePayment removes a payment; returns sql.ErrNoRows if absent
func (r *PaymentRepository) DeletePayment(id string) error {
	result, err := r.db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %v", err)
	}
	return requireRowAffected(result)
}

// lockBill reads the bill row under FOR UPDATE so concurrent payment writes
// against the same bill serialize on the reconcile check.
func lockBill(tx *sql.Tx, billID string) (total float64, status string, err error) {
	err = tx.QueryRow(
		`SELECT total_amount, status FROM bills WHERE id = $1 FOR UPDATE`, billID,
	).Scan(&total, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", sql.ErrNoRows
		}
		return 0, "", fmt.Errorf("failed to lock bill: %v", err)
	}
	return total, status, nil
}

// reconcileBill sums the bill's completed payments and flips an open bill to
// paid when the sum reaches the total. Pending and failed payments are
// excluded from the sum. The open -> paid transition is one-way.
func reconcileBill(tx *sql.Tx, billID string) (string, error) {
	var total float64
	var status string
	err := tx.QueryRow(
		`SELECT total_amount, status FROM bills WHERE id = $1`, billID,
	).Scan(&total, &status)
	if err != nil {
		return "", fmt.Errorf("failed to read bill: %v", err)
	}

	var paid float64
	err = tx.QueryRow(
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE bill_id = $1 AND status = $2`,
		billID, models.PaymentStatusCompleted,
	).Scan(&paid)
	if err != nil {
		return "", fmt.Errorf("failed to sum completed payments: %v", err)
	}

	next := nextBillStatus(status, total, paid)
	if next != status {
		if _, err := tx.Exec(
			`UPDATE bills SET status = $2 WHERE id = $1`,
			billID, models.BillStatusPaid,
		); err != nil {
			return "", fmt.Errorf("failed to mark bill paid: %v", err)
		}
	}
	return next, nil
}

// nextBillStatus decides the bill status after a payment write. Only an
// open bill whose completed payments cover its total moves, to paid; paid
// and closed are terminal, so a payment later failing or shrinking never
// reopens a bill.
func nextBillStatus(status string, total, paid float64) string {
	if status == models.BillStatusOpen && paid >= total {
		return models.BillStatusPaid
	}
	return status
}

func (r *PaymentRepository) queryPayments(query string, args ...interface{}) ([]models.Payment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %v", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var payment models.Payment
		if err := scanPayment(rows, &payment); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %v", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func scanPayment(row rowScanner, payment *models.Payment) error {
	var userID sql.NullString
	err := row.Scan(&payment.ID, &payment.BillID, &userID, &payment.Amount,
		&payment.PaymentMethod, &payment.Status, &payment.CreatedAt)
	if err != nil {
		return err
	}
	payment.UserID = userID.String
	return nil
}
