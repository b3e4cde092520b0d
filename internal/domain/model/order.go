package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order records a purchase of one book. Immutable except Status.
// TotalAmount is authoritative as of order creation; it is never
// recomputed from the book's current price.
type Order struct {
	ID              int64
	BuyerID         int64
	SellerID        int64
	BookID          int64
	Quantity        int
	TotalAmount     float64
	Status          OrderStatus
	ShippingAddress string
	CreatedAt       time.Time
}

// SellerOrder is an order row joined with its book's category for
// aggregation. BookCategory is nil when the book has been deleted.
type SellerOrder struct {
	Order
	BookCategory *string
}

// Purchase is the buyer-side projection of an order used by the
// suggestion cascade. Category is nil when the book no longer exists.
type Purchase struct {
	BookID   int64
	Category *string
}
