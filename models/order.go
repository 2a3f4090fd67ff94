package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. New orders start as pending; the admin panel moves
// them through the remaining labels.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the strict status machine permits
// from → to. The admin API intentionally does NOT enforce this today
// (the back-office selector allows any assignment); it exists so a
// guard can be switched on without re-deriving the graph.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered
	}
	return false
}

// PaymentMethodCOD is the only supported payment method; it is recorded
// as metadata on the order.
const PaymentMethodCOD = "cod"

type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	Phone         string      `gorm:"not null" json:"phone"`
	Email         string      `gorm:"not null" json:"email"`
	Address       string      `gorm:"type:text;not null" json:"address"`
	City          string      `json:"city"`
	Notes         string      `gorm:"type:text" json:"notes"`
	Total         float64     `gorm:"not null" json:"total"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentMethod string      `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
}

// OrderItem captures the unit price at order time. It must never follow
// later product price changes, and its ProductID may dangle once a
// product is deleted.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
