package models

import "time"

// CartAttributes is the configuration chosen by the shopper. Two cart
// rows with the same product ID and equal attributes are the same line
// item; adding the second increments quantity instead.
type CartAttributes struct {
	Edition   string `json:"edition,omitempty"`
	Model     string `json:"model,omitempty"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Tzitziyot bool   `json:"tzitziyot,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// CartItem is the model for the 'cart_items' table. Carts are keyed by
// an opaque token handed to the browser, not by a user account.
type CartItem struct {
	ID          int64          `json:"id" db:"id"`
	CartToken   string         `json:"cartToken" db:"cart_token"`
	ProductID   string         `json:"productId" db:"product_id"`
	ProductName string         `json:"productName" db:"product_name"`
	Type        ProductType    `json:"type" db:"product_type"`
	Price       float64        `json:"price" db:"price"`
	Quantity    int            `json:"quantity" db:"quantity"`
	Image       string         `json:"image" db:"image"`
	Attributes  CartAttributes `json:"attributes" db:"-"` // stored as JSON string
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}
