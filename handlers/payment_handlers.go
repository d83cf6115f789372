package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/middleware"
	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
)

// ListPayments handles GET /api/payment
func ListPayments(c *gin.Context) {
	payments, err := handlerServices.PaymentService.ListPayments()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payments)
}

// GetPayment handles GET /api/payment/:id
func GetPayment(c *gin.Context) {
	payment, err := handlerServices.PaymentService.GetPayment(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payment)
}

// CreatePayment handles POST /api/payment. Recording a completed payment
// that covers the bill's remaining balance marks the bill paid in the same
// operation.
func CreatePayment(c *gin.Context) {
	var request models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Bill ID, amount, and payment method are required"))
		return
	}

	// An authenticated customer's payment is attributed to their account
	if creds := middleware.GetCredentials(c); creds != nil && request.UserID == "" {
		request.UserID = creds.UserID
	}

	payment, _, err := handlerServices.PaymentService.RecordPayment(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, payment)
}

// UpdatePayment handles PUT /api/payment/:id. A payment moved from pending
// to completed re-runs the paid check against its bill.
func UpdatePayment(c *gin.Context) {
	var request models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Amount, payment method, and status are required"))
		return
	}

	payment, _, err := handlerServices.PaymentService.UpdatePayment(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payment)
}

// DeletePayment handles DELETE /api/payment/:id
func DeletePayment(c *gin.Context) {
	if err := handlerServices.PaymentService.DeletePayment(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPaymentsByBill handles GET /api/payment/bill/:billId
func ListPaymentsByBill(c *gin.Context) {
	payments, err := handlerServices.PaymentService.ListPaymentsByBill(c.Param("billId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payments)
}

// ListPaymentsByUser handles GET /api/payment/user/:userId
func ListPaymentsByUser(c *gin.Context) {
	payments, err := handlerServices.PaymentService.ListPaymentsByUser(c.Param("userId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payments)
}

// GetBillPaymentSummary handles GET /api/payment/bill/:billId/summary
func GetBillPaymentSummary(c *gin.Context) {
	summary, err := handlerServices.PaymentService.GetBillPaymentSummary(c.Param("billId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, summary)
}
