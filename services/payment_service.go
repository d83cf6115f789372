package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// PaymentService handles payment recording and reconciliation against bill
// totals. Atomicity of the paid-check belongs to the repository, which runs
// it inside a single transaction; this layer owns validation and the pure
// arithmetic.
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	billRepo    *repository.BillRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo *repository.PaymentRepository, billRepo *repository.BillRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
	}
}

// PaidAmount sums the completed payments in the given list. Pending and
// failed payments are excluded.
func PaidAmount(payments []models.Payment) float64 {
	var paid float64
	for _, payment := range payments {
		if payment.Status == models.PaymentStatusCompleted {
			paid += payment.Amount
		}
	}
	return utils.Round(paid)
}

// RemainingAmount returns how much of the bill total is still unpaid,
// floored at zero when the bill is overpaid.
func RemainingAmount(bill *models.Bill, payments []models.Payment) float64 {
	return utils.Round(math.Max(0, bill.TotalAmount-PaidAmount(payments)))
}

// RecordPayment creates a payment against a bill and re-runs the paid
// check. The submitted amount is recorded as-is; an overpayment is accepted,
// not capped. Suggested-amount clamping is the payment form's concern.
// Returns the payment and the bill status after reconciliation.
func (s *PaymentService) RecordPayment(req *models.CreatePaymentRequest) (*models.Payment, string, error) {
	if err := utils.ValidatePositive(req.Amount, "payment amount"); err != nil {
		return nil, "", err
	}

	status := req.Status
	if status == "" {
		status = models.PaymentStatusPending
	}

	payment := &models.Payment{
		ID:            uuid.NewString(),
		BillID:        req.BillID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}

	billStatus, err := s.paymentRepo.CreateAndReconcile(payment)
	if err != nil {
		return nil, "", mapStoreError(err, "Bill", "Failed to store payment")
	}
	return payment, billStatus, nil
}

// UpdatePayment updates a payment and re-runs the paid check, so a payment
// moved from pending to completed can flip its bill to paid.
func (s *PaymentService) UpdatePayment(paymentID string, req *models.UpdatePaymentRequest) (*models.Payment, string, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, "", mapStoreError(err, "Payment", "Failed to fetch payment")
	}

	payment.Amount = req.Amount
	payment.PaymentMethod = req.PaymentMethod
	payment.Status = req.Status

	billStatus, err := s.paymentRepo.UpdateAndReconcile(payment)
	if err != nil {
		return nil, "", mapStoreError(err, "Payment", "Failed to update payment")
	}
	return payment, billStatus, nil
}

// GetPayment returns a single payment
func (s *PaymentService) GetPayment(paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, mapStoreError(err, "Payment", "Failed to fetch payment")
	}
	return payment, nil
}

// ListPayments returns all payments
func (s *PaymentService) ListPayments() ([]models.Payment, error) {
	payments, err := s.paymentRepo.ListPayments()
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve payments", err)
	}
	return payments, nil
}

// ListPaymentsByBill returns all payments recorded against a bill
func (s *PaymentService) ListPaymentsByBill(billID string) ([]models.Payment, error) {
	if _, err := s.billRepo.GetBillByID(billID); err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	payments, err := s.paymentRepo.ListPaymentsByBill(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve payments", err)
	}
	return payments, nil
}

// ListPaymentsByUser returns all payments submitted by a user
func (s *PaymentService) ListPaymentsByUser(userID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByUser(userID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve payments", err)
	}
	return payments, nil
}

// DeletePayment removes a payment record
func (s *PaymentService) DeletePayment(paymentID string) error {
	if err := s.paymentRepo.DeletePayment(paymentID); err != nil {
		return mapStoreError(err, "Payment", "Failed to delete payment")
	}
	return nil
}

// GetBillPaymentSummary reports the bill's reconciliation state: total,
// completed sum, remaining balance, and current status.
func (s *PaymentService) GetBillPaymentSummary(billID string) (*models.BillPaymentSummary, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	payments, err := s.paymentRepo.ListPaymentsByBill(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve payments", err)
	}

	return &models.BillPaymentSummary{
		BillID:          bill.ID,
		TotalAmount:     utils.Round(bill.TotalAmount),
		PaidAmount:      PaidAmount(payments),
		RemainingAmount: RemainingAmount(bill, payments),
		Status:          bill.Status,
	}, nil
}
