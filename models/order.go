package models

import "time"

type OrderStatus string

const (
	// Order lifecycle: pending until the payment provider says otherwise.
	OrderStatusPending    OrderStatus = "pending"    // created, awaiting payment
	OrderStatusProcessing OrderStatus = "processing" // provider reports payment underway
	OrderStatusCompleted  OrderStatus = "completed"  // payment confirmed
	OrderStatusFailed     OrderStatus = "failed"     // payment failed, denied or expired
	OrderStatusCancelled  OrderStatus = "cancelled"  // buyer abandoned checkout
	OrderStatusRefunded   OrderStatus = "refunded"   // money returned to buyer
)

// IsTerminal reports whether no further legitimate transition is expected.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	OrderID       uint        `gorm:"primaryKey;autoIncrement;column:order_id" json:"order_id"`
	UserID        *uint       `json:"user_id"` // nil for guest checkout
	Username      string      `gorm:"not null" json:"username"`
	Currency      string      `gorm:"not null" json:"currency"`
	MerchantEmail string      `gorm:"not null" json:"merchant_email"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	Digest        string      `gorm:"not null" json:"digest"`
	Salt          string      `gorm:"not null" json:"salt"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TransactionID *string     `json:"transaction_id"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem snapshots the product price at order time. Catalog edits
// after checkout must not change what the customer was billed.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
