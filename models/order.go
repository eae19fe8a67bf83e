package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is the customer's chosen settlement channel.
// Values outside the known set are carried verbatim; they produce no
// payment instructions in the checkout response.
type PaymentMethod string

const (
	PaymentMethodBank  PaymentMethod = "bank"
	PaymentMethodGCash PaymentMethod = "gcash"
	PaymentMethodCOD   PaymentMethod = "cod"
)

// Known reports whether the method is one of the supported channels
func (m PaymentMethod) Known() bool {
	switch m {
	case PaymentMethodBank, PaymentMethodGCash, PaymentMethodCOD:
		return true
	}
	return false
}

// PaymentStatus tracks settlement of an order
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// OrderStatus tracks fulfilment of an order
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the defined fulfilment states
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a single line item on an order
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Document is an opaque structured payload supplied by the storefront
// (customer info, shipping address). Stored as-is, validated for presence only.
type Document map[string]interface{}

// Order represents a customer order in the system
type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderNumber     string         `gorm:"uniqueIndex;not null" json:"orderNumber"` // assigned server-side at creation, never client-supplied
	CustomerInfo    Document       `gorm:"serializer:json;not null" json:"customerInfo"`
	ShippingAddress Document       `gorm:"serializer:json;not null" json:"shippingAddress"`
	Items           []OrderItem    `gorm:"serializer:json;not null" json:"items"`
	PaymentMethod   PaymentMethod  `gorm:"not null" json:"paymentMethod"`
	PaymentStatus   PaymentStatus  `gorm:"not null;default:'pending'" json:"paymentStatus"`
	OrderStatus     OrderStatus    `gorm:"not null;default:'processing'" json:"orderStatus"`
	Subtotal        float64        `json:"subtotal"` // client-supplied, stored as-is
	Shipping        float64        `json:"shipping"`
	Total           float64        `json:"total"`
	PaymentProofS3Key *string      `json:"payment_proof_s3_key,omitempty"` // nullable, set when proof of payment is uploaded
	PaymentProofURL   *string      `gorm:"-" json:"payment_proof_url,omitempty"` // computed field, presigned URL for proof image
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
