package handlers

import (
	"net/http"

	"github.com/alefmoda/alef-golang/internal/auth"
	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/gin-gonic/gin"
)

//
// --- Admin Handlers ---
//

// AdminLoginInput defines the JSON for POST /v1/admin/login.
type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin exchanges the shop password for a Bearer token.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if config.AdminPassword == "" || input.Password != config.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RefreshCatalog is the handler for POST /v1/admin/catalog/refresh. It
// forces a NocoDB fetch regardless of the revalidation interval.
func (h *Handlers) RefreshCatalog(c *gin.Context) {
	count := h.Catalog.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Catalog refreshed", "products": count})
}
