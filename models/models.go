// models/models.go
package models

import "time"

// Bill status values
const (
	BillStatusOpen   = "open"
	BillStatusPaid   = "paid"
	BillStatusClosed = "closed"
)

// Payment status values
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// User role values
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

// Restaurant represents a restaurant managed by an owner account
type Restaurant struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address,omitempty" db:"address"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Cuisine     string    `json:"cuisine,omitempty" db:"cuisine"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// QRCode is a per-table scannable code record. Immutable once created.
type QRCode struct {
	ID           string    `json:"id" db:"id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	TableNumber  int       `json:"table_number" db:"table_number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableRef is the restaurant+table reference carried in a QR payload
type TableRef struct {
	RestaurantID string `json:"restaurant_id"`
	TableNumber  int    `json:"table_number"`
}

// Bill is a tab opened for one restaurant table. TotalAmount is derived
// from the bill's items and recomputed on every item mutation.
type Bill struct {
	ID           string    `json:"id" db:"id"`
	RestaurantID string    `json:"restaurant_id" db:"restaurant_id"`
	TableNumber  int       `json:"table_number" db:"table_number"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BillItem is a single line on a bill. AssignedTo holds the participant
// IDs the item is split across; empty means unassigned.
type BillItem struct {
	ID         string   `json:"id" db:"id"`
	BillID     string   `json:"bill_id" db:"bill_id"`
	Name       string   `json:"name" db:"name"`
	Price      float64  `json:"price" db:"price"`
	Quantity   int      `json:"quantity" db:"quantity"`
	AssignedTo []string `json:"assigned_to"`
}

// LineTotal returns the item's price multiplied by its quantity
func (i *BillItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Participant is a person joined to a bill for cost splitting. The first
// participant created on a bill is its owner.
type Participant struct {
	ID        string    `json:"id" db:"id"`
	BillID    string    `json:"bill_id" db:"bill_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Payment represents a payment submitted against a bill
type Payment struct {
	ID            string    `json:"id" db:"id"`
	BillID        string    `json:"bill_id" db:"bill_id"`
	UserID        string    `json:"user_id,omitempty" db:"user_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// User is a profile record from the identity provider. Role distinguishes
// customer accounts from restaurant-owner accounts.
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name,omitempty" db:"name"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BillAggregate joins a bill, its items, and its participants into one
// consistent in-memory object for the split calculator and payment
// reconciliation to operate on.
type BillAggregate struct {
	Bill         Bill          `json:"bill"`
	Items        []BillItem    `json:"items"`
	Participants []Participant `json:"participants"`
}

// BillPaymentSummary reports a bill's reconciliation state
type BillPaymentSummary struct {
	BillID          string  `json:"bill_id"`
	TotalAmount     float64 `json:"total_amount"`
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	Status          string  `json:"status"`
}

// NewBill creates an open bill for a table
func NewBill(id, restaurantID string, tableNumber int) *Bill {
	return &Bill{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		TotalAmount:  0,
		Status:       BillStatusOpen,
		CreatedAt:    time.Now().UTC(),
	}
}

// NewQRCode creates a QR code record for a restaurant table
func NewQRCode(id, restaurantID string, tableNumber int) *QRCode {
	return &QRCode{
		ID:           id,
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		CreatedAt:    time.Now().UTC(),
	}
}
