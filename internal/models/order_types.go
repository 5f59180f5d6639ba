package models

import "time"

// Order is the model for the 'orders' table. A row exists only after
// the webhook accepted the checkout payload.
type Order struct {
	ID        int64       `json:"id" db:"id"`
	Phone     string      `json:"phone" db:"phone"`
	Total     float64     `json:"total" db:"total"`
	Status    string      `json:"status" db:"status"` // e.g., submitted
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	Items     []OrderItem `json:"items,omitempty" db:"-"`
}

// OrderItem is the model for the 'order_items' table.
type OrderItem struct {
	ID          int64          `json:"id" db:"id"`
	OrderID     int64          `json:"orderId" db:"order_id"`
	ProductName string         `json:"product" db:"product_name"`
	Quantity    int            `json:"quantity" db:"quantity"`
	UnitPrice   float64        `json:"price" db:"unit_price"` // Price at the time of purchase
	Attributes  CartAttributes `json:"attributes" db:"-"`     // stored as JSON string
}

// WebhookOrderItem is one entry of the webhook payload's items array.
type WebhookOrderItem struct {
	Product    string         `json:"product"`
	Quantity   int            `json:"quantity"`
	Price      float64        `json:"price"`
	Attributes CartAttributes `json:"attributes"`
}

// WebhookOrder is the JSON body posted to the order webhook.
type WebhookOrder struct {
	Customer struct {
		Phone string `json:"phone"`
	} `json:"customer"`
	Items     []WebhookOrderItem `json:"items"`
	Total     float64            `json:"total"`
	Timestamp time.Time          `json:"timestamp"`
}
