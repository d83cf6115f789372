// models/requests.go
package models

// CreateRestaurantRequest request model
type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}

// UpdateRestaurantRequest request model
type UpdateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
}

// CreateQRCodeRequest request model
type CreateQRCodeRequest struct {
	TableNumber int `json:"table_number" binding:"required,gt=0"`
}

// QRCodeResponse is a QR record plus the URL embedded in the rendered code
type QRCodeResponse struct {
	QRCode
	QRURL string `json:"qr_url"`
}

// CreateUserRequest request model
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// UpdateUserRequest request model
type UpdateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BillItemInput is a single item in a bill create or add-items request
type BillItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity"`
}

// CreateBillRequest request model
type CreateBillRequest struct {
	RestaurantID string          `json:"restaurant_id" binding:"required"`
	TableNumber  int             `json:"table_number" binding:"required,gt=0"`
	Items        []BillItemInput `json:"items"`
}

// UpdateBillRequest request model
type UpdateBillRequest struct {
	TableNumber int    `json:"table_number" binding:"required,gt=0"`
	Status      string `json:"status" binding:"required,oneof=open paid closed"`
}

// AddBillItemsRequest request model
type AddBillItemsRequest struct {
	Items []BillItemInput `json:"items" binding:"required,min=1,dive"`
}

// AddParticipantRequest request model
type AddParticipantRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// SetItemAssignmentsRequest replaces an item's assigned participant set
type SetItemAssignmentsRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
}

// CalculateSplitRequest request model
type CalculateSplitRequest struct {
	Policy string `json:"policy" binding:"required,oneof=equal itemized"`
}

// SplitResult maps participant IDs to the amount each owes
type SplitResult struct {
	BillID      string             `json:"bill_id"`
	Policy      string             `json:"policy"`
	TotalAmount float64            `json:"total_amount"`
	Owed        map[string]float64 `json:"owed"`
}

// CreatePaymentRequest request model
type CreatePaymentRequest struct {
	BillID        string  `json:"bill_id" binding:"required"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=card cash wallet"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending completed failed"`
}

// UpdatePaymentRequest request model
type UpdatePaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=card cash wallet"`
	Status        string  `json:"status" binding:"required,oneof=pending completed failed"`
}
