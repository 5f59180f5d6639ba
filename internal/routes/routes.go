package routes

import (
	"net/http"

	"github.com/alefmoda/alef-golang/internal/handlers"
	"github.com/alefmoda/alef-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the storefront frontend to call us from another
// origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Catalog Routes (Public) ---
		v1.GET("/catalog", h.GetCatalog)
		v1.GET("/catalog/view", h.GetCatalogView)

		// --- Media Proxy (Public) ---
		v1.GET("/images", h.ProxyImage)

		// --- Cart Routes (Public, token-keyed) ---
		v1.POST("/cart/items", h.AddToCart)
		v1.GET("/cart/:token", h.GetCart)
		v1.DELETE("/cart/:token", h.ClearCart)
		v1.DELETE("/cart/:token/items/:id", h.RemoveCartItem)

		// --- Checkout (Public) ---
		v1.POST("/checkout", h.Checkout)

		// --- Admin Routes ---
		v1.POST("/admin/login", h.AdminLogin)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth())
		{
			admin.POST("/catalog/refresh", h.RefreshCatalog)
			admin.GET("/orders", h.ListOrders)
		}
	}

	return router
}
