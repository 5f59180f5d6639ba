package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//
// --- Cart Handlers (Public, token-keyed) ---
//

// AddToCartInput defines the JSON for adding an item to the cart.
// CartToken is empty on the first add; the response hands one back.
type AddToCartInput struct {
	CartToken   string                `json:"cartToken"`
	ProductID   string                `json:"productId" binding:"required"`
	ProductName string                `json:"productName" binding:"required"`
	Type        models.ProductType    `json:"type" binding:"required,oneof=camisa articulo"`
	Price       float64               `json:"price" binding:"gte=0"`
	Quantity    int                   `json:"quantity" binding:"required,gt=0"`
	Image       string                `json:"image"`
	Attributes  models.CartAttributes `json:"attributes"`
}

// AddToCart is the handler for POST /v1/cart/items. A line item with
// the same product ID and equal attributes already in the cart gets its
// quantity incremented instead of a second row.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := input.CartToken
	if token == "" {
		token = uuid.NewString()
	}

	// 1. --- Look for an identical line item ---
	rows, err := h.DB.Query(
		"SELECT id, quantity, attributes FROM cart_items WHERE cart_token = ? AND product_id = ?",
		token, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}
	defer rows.Close()

	var matchID int64
	var matchQty int
	for rows.Next() {
		var id int64
		var qty int
		var attrJSON string
		if err := rows.Scan(&id, &qty, &attrJSON); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan cart item"})
			return
		}
		var attrs models.CartAttributes
		if err := json.Unmarshal([]byte(attrJSON), &attrs); err != nil {
			continue // unreadable row never matches
		}
		if attrs == input.Attributes {
			matchID = id
			matchQty = qty
			break
		}
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	now := time.Now()

	// 2. --- Increment on match, insert otherwise ---
	if matchID != 0 {
		_, err := h.DB.Exec(
			"UPDATE cart_items SET quantity = ?, updated_at = ? WHERE id = ?",
			matchQty+input.Quantity, now, matchID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cartToken": token, "itemId": matchID, "quantity": matchQty + input.Quantity})
		return
	}

	attrJSON, err := json.Marshal(input.Attributes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode attributes"})
		return
	}

	result, err := h.DB.Exec(`
		INSERT INTO cart_items
			(cart_token, product_id, product_name, product_type, price, quantity, image, attributes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		token, input.ProductID, input.ProductName, input.Type, input.Price,
		input.Quantity, input.Image, string(attrJSON), now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
		return
	}

	itemID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"cartToken": token, "itemId": itemID, "quantity": input.Quantity})
}

// GetCart is the handler for GET /v1/cart/:token.
func (h *Handlers) GetCart(c *gin.Context) {
	token := c.Param("token")

	items, err := h.loadCartItems(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cart"})
		return
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// RemoveCartItem is the handler for DELETE /v1/cart/:token/items/:id.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	token := c.Param("token")
	itemID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM cart_items WHERE cart_token = ? AND id = ?", token, itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// ClearCart is the handler for DELETE /v1/cart/:token.
func (h *Handlers) ClearCart(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM cart_items WHERE cart_token = ?", c.Param("token")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func (h *Handlers) loadCartItems(token string) ([]models.CartItem, error) {
	rows, err := h.DB.Query(`
		SELECT id, cart_token, product_id, product_name, product_type, price, quantity, image, attributes, created_at, updated_at
		FROM cart_items WHERE cart_token = ? ORDER BY id`, token)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		var attrJSON string
		if err := rows.Scan(&item.ID, &item.CartToken, &item.ProductID, &item.ProductName,
			&item.Type, &item.Price, &item.Quantity, &item.Image, &attrJSON,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(attrJSON), &item.Attributes); err != nil {
			item.Attributes = models.CartAttributes{}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
