package models

import (
	"math"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"     // Order placed, awaiting handling
	OrderStatusInProgress OrderStatus = "in-progress" // Being prepared / shipped
	OrderStatusCompleted  OrderStatus = "completed"   // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"   // Cancelled; stock returned
)

type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderRef string `gorm:"uniqueIndex" json:"order_ref"`

	// Weak references to the product and user the order was created from.
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	UserID    *string  `json:"user_id,omitempty"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Point-in-time snapshot; owned by the order, never re-read from
	// the product or user after creation.
	CustomerName     string  `gorm:"not null" json:"customer_name"`
	CustomerEmail    string  `json:"customer_email"`
	CustomerLocation string  `json:"customer_location"`
	ProductName      string  `json:"product_name"`
	ProductImage     string  `json:"product_image"`
	UnitPrice        float64 `json:"unit_price"`
	Quantity         int     `gorm:"not null" json:"quantity"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	ShippingCost   float64 `json:"shipping_cost"`
	TotalAmount    float64 `json:"total_amount"`
	CouponCode     string  `json:"coupon_code,omitempty"`

	DeliveryDate time.Time   `json:"delivery_date"`
	Status       OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ComputeTotal derives the invoice total from its parts.
func (o *Order) ComputeTotal() {
	o.TotalAmount = o.Subtotal - o.DiscountAmount + o.ShippingCost
}

// ShippingCostFor charges a flat rate per started 30kg bracket above the
// first kilogram of total shipment weight.
func ShippingCostFor(unitWeight float64, qty int) float64 {
	totalWeight := unitWeight * float64(qty)
	if totalWeight <= 0 {
		return 0
	}
	return float64(int(math.Ceil((totalWeight-1)/30.0))) * 30.0
}
