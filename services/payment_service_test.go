package services

import (
	"testing"

	"github.com/klubapp/klub-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPaidAmount(t *testing.T) {
	payments := []models.Payment{
		{ID: "pay-1", BillID: "bill-1", Amount: 10.00, Status: models.PaymentStatusCompleted},
		{ID: "pay-2", BillID: "bill-1", Amount: 5.00, Status: models.PaymentStatusPending},
		{ID: "pay-3", BillID: "bill-1", Amount: 7.50, Status: models.PaymentStatusCompleted},
		{ID: "pay-4", BillID: "bill-1", Amount: 3.00, Status: models.PaymentStatusFailed},
	}

	// Only completed payments count: 10.00 + 7.50 = 17.50
	assert.Equal(t, 17.50, PaidAmount(payments))
}

func TestPaidAmount_NoPayments(t *testing.T) {
	assert.Equal(t, 0.00, PaidAmount(nil))
}

func TestRemainingAmount(t *testing.T) {
	bill := &models.Bill{ID: "bill-1", TotalAmount: 30.00, Status: models.BillStatusOpen}

	payments := []models.Payment{
		{ID: "pay-1", BillID: "bill-1", Amount: 10.00, Status: models.PaymentStatusCompleted},
	}
	assert.Equal(t, 20.00, RemainingAmount(bill, payments))

	payments = append(payments, models.Payment{
		ID: "pay-2", BillID: "bill-1", Amount: 20.00, Status: models.PaymentStatusCompleted,
	})
	assert.Equal(t, 0.00, RemainingAmount(bill, payments))
}

func TestRemainingAmount_PendingPaymentsExcluded(t *testing.T) {
	bill := &models.Bill{ID: "bill-1", TotalAmount: 30.00, Status: models.BillStatusOpen}

	payments := []models.Payment{
		{ID: "pay-1", BillID: "bill-1", Amount: 30.00, Status: models.PaymentStatusPending},
	}

	assert.Equal(t, 30.00, RemainingAmount(bill, payments))
}

func TestRemainingAmount_OverpaymentClampsToZero(t *testing.T) {
	bill := &models.Bill{ID: "bill-1", TotalAmount: 30.00, Status: models.BillStatusOpen}

	payments := []models.Payment{
		{ID: "pay-1", BillID: "bill-1", Amount: 25.00, Status: models.PaymentStatusCompleted},
		{ID: "pay-2", BillID: "bill-1", Amount: 10.00, Status: models.PaymentStatusCompleted},
	}

	assert.Equal(t, 0.00, RemainingAmount(bill, payments))
}
