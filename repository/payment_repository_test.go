package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/klubapp/klub-backend/models"
)

func TestNextBillStatus(t *testing.T) {
	testCases := []struct {
		name     string
		status   string
		total    float64
		paid     float64
		expected string
	}{
		{"open bill fully covered", models.BillStatusOpen, 30.00, 30.00, models.BillStatusPaid},
		{"open bill overpaid", models.BillStatusOpen, 30.00, 35.00, models.BillStatusPaid},
		{"open bill partially covered", models.BillStatusOpen, 30.00, 10.00, models.BillStatusOpen},
		{"open bill one cent short", models.BillStatusOpen, 30.00, 29.99, models.BillStatusOpen},
		{"paid bill stays paid when payments shrink", models.BillStatusPaid, 30.00, 0.00, models.BillStatusPaid},
		{"closed bill stays closed", models.BillStatusClosed, 30.00, 30.00, models.BillStatusClosed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nextBillStatus(tc.status, tc.total, tc.paid))
		})
	}
}

func billRows(total float64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"total_amount", "status"}).AddRow(total, status)
}

func paidRows(paid float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"coalesce"}).AddRow(paid)
}

func testPayment(billID, status string, amount float64) *models.Payment {
	return &models.Payment{
		ID:            "pay-1",
		BillID:        billID,
		Amount:        amount,
		PaymentMethod: "card",
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestPaymentRepository_CreateAndReconcile_CompletingPaymentPaysBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Bill total 30.00 with a completed 10.00 payment already recorded.
	// Inserting a completed 20.00 payment covers the total.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectQuery("COALESCE").
		WithArgs("bill-1", models.PaymentStatusCompleted).
		WillReturnRows(paidRows(30.00))
	mock.ExpectExec("UPDATE bills SET status").
		WithArgs("bill-1", models.BillStatusPaid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPaymentRepository(db)
	status, err := repo.CreateAndReconcile(testPayment("bill-1", models.PaymentStatusCompleted, 20.00))

	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_CreateAndReconcile_PartialPaymentKeepsBillOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// 10.00 completed against a 30.00 bill; no status update is issued.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectQuery("COALESCE").
		WithArgs("bill-1", models.PaymentStatusCompleted).
		WillReturnRows(paidRows(10.00))
	mock.ExpectCommit()

	repo := NewPaymentRepository(db)
	status, err := repo.CreateAndReconcile(testPayment("bill-1", models.PaymentStatusCompleted, 10.00))

	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusOpen, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_CreateAndReconcile_PendingPaymentDoesNotPayBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// A pending payment is excluded from the completed sum, so a pending
	// 30.00 against a 30.00 bill leaves it open.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectQuery("COALESCE").
		WithArgs("bill-1", models.PaymentStatusCompleted).
		WillReturnRows(paidRows(0.00))
	mock.ExpectCommit()

	repo := NewPaymentRepository(db)
	status, err := repo.CreateAndReconcile(testPayment("bill-1", models.PaymentStatusPending, 30.00))

	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusOpen, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateAndReconcile_CompletingPendingPaymentPaysBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// The pending 30.00 payment from the previous scenario moves to
	// completed; the re-run of the paid check flips the bill.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectExec("UPDATE payments SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusOpen))
	mock.ExpectQuery("COALESCE").
		WithArgs("bill-1", models.PaymentStatusCompleted).
		WillReturnRows(paidRows(30.00))
	mock.ExpectExec("UPDATE bills SET status").
		WithArgs("bill-1", models.BillStatusPaid).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPaymentRepository(db)
	status, err := repo.UpdateAndReconcile(testPayment("bill-1", models.PaymentStatusCompleted, 30.00))

	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_CreateAndReconcile_PaidBillStaysPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// An extra payment against an already-paid bill is recorded but never
	// re-derives the status.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusPaid))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT total_amount, status FROM bills").
		WithArgs("bill-1").
		WillReturnRows(billRows(30.00, models.BillStatusPaid))
	mock.ExpectQuery("COALESCE").
		WithArgs("bill-1", models.PaymentStatusCompleted).
		WillReturnRows(paidRows(35.00))
	mock.ExpectCommit()

	repo := NewPaymentRepository(db)
	status, err := repo.CreateAndReconcile(testPayment("bill-1", models.PaymentStatusCompleted, 5.00))

	assert.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
