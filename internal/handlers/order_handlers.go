package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/alefmoda/alef-golang/internal/email"
	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Checkout & Order Handlers ---
//

// CheckoutInput defines the JSON for POST /v1/checkout.
type CheckoutInput struct {
	CartToken string `json:"cartToken" binding:"required"`
	Phone     string `json:"phone" binding:"required,min=10"`
}

// Checkout relays the cart to the order webhook. Only after the webhook
// accepts the payload is the order recorded and the cart cleared; on
// failure the cart is untouched so the shopper can simply retry.
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 1. --- Load the cart ---
	items, err := h.loadCartItems(input.CartToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	// 2. --- Build the webhook payload ---
	var order models.WebhookOrder
	order.Customer.Phone = input.Phone
	order.Timestamp = time.Now().UTC()
	for _, item := range items {
		order.Items = append(order.Items, models.WebhookOrderItem{
			Product:    item.ProductName,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Attributes: item.Attributes,
		})
		order.Total += item.Price * float64(item.Quantity)
	}

	// 3. --- Deliver. A rejection here is retryable for the shopper. ---
	if err := h.Webhook.SendOrder(c.Request.Context(), order); err != nil {
		log.Printf("Order webhook delivery failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Hubo un error generando la orden. Intente de nuevo."})
		return
	}

	// 4. --- Record the order and clear the cart ---
	orderID, err := h.recordOrder(c, input.CartToken, order)
	if err != nil {
		// The webhook already has the order; surface success but log the
		// bookkeeping failure.
		log.Printf("Failed to record order: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "submitted"})
		return
	}

	// 5. --- Best-effort shop notification ---
	go func(o models.WebhookOrder) {
		if err := email.SendOrderNotification(o); err != nil {
			log.Printf("Order email failed: %v", err)
		}
	}(order)

	c.JSON(http.StatusOK, gin.H{"status": "submitted", "orderId": orderID})
}

func (h *Handlers) recordOrder(c *gin.Context, cartToken string, order models.WebhookOrder) (int64, error) {
	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // Safety net

	result, err := tx.Exec(
		"INSERT INTO orders (phone, total, status, created_at) VALUES (?, ?, ?, ?)",
		order.Customer.Phone, order.Total, "submitted", order.Timestamp)
	if err != nil {
		return 0, err
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, item := range order.Items {
		attrJSON, err := json.Marshal(item.Attributes)
		if err != nil {
			return 0, err
		}
		_, err = tx.Exec(
			"INSERT INTO order_items (order_id, product_name, quantity, unit_price, attributes) VALUES (?, ?, ?, ?, ?)",
			orderID, item.Product, item.Quantity, item.Price, string(attrJSON))
		if err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE cart_token = ?", cartToken); err != nil {
		return 0, err
	}

	return orderID, tx.Commit()
}

// ListOrders is the handler for GET /v1/admin/orders.
func (h *Handlers) ListOrders(c *gin.Context) {
	rows, err := h.DB.Query(
		"SELECT id, phone, total, status, created_at FROM orders ORDER BY created_at DESC LIMIT 200")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read orders"})
		return
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Phone, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order"})
			return
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
