package models

import "time"

// OrderStatus represents the states the backend reports for an order.
// The client only displays these; transitions happen server-side.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Delivered selects the badge style on the dashboard.
func (s OrderStatus) Delivered() bool {
	return s == StatusDelivered
}

type Order struct {
	ID         uint        `json:"id"`
	CustomerID uint        `json:"customerId"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`
	TotalPrice float64     `json:"totalPrice"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// RestaurantTitle is display-only; the relation may be absent on the wire.
func (o Order) RestaurantTitle() string {
	if o.Restaurant == nil {
		return "Unknown restaurant"
	}
	return o.Restaurant.Title
}
