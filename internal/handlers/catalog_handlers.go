package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/alefmoda/alef-golang/internal/catalog"
	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/gin-gonic/gin"
)

//
// --- Catalog Handlers (Public) ---
//

// GetCatalog is the handler for GET /v1/catalog. It returns the full
// normalized product list plus the gender fan-out the storefront needs
// before any selection exists.
func (h *Handlers) GetCatalog(c *gin.Context) {
	products := h.Catalog.Products(c.Request.Context())
	engine := catalog.NewEngine(products)

	c.JSON(http.StatusOK, gin.H{
		"products":         products,
		"availableGenders": engine.AvailableGenders(),
		"tzitzitImage":     h.Catalog.TzitzitImage(c.Request.Context()),
	})
}

// catalogViewResponse is the derived view for one selection tuple.
type catalogViewResponse struct {
	Selection         catalog.Selection   `json:"selection"`
	AvailableGenders  []string            `json:"availableGenders"`
	AvailableTypes    []string            `json:"availableTypes"`
	AvailableEditions []string            `json:"availableEditions"`
	AvailableModels   []string            `json:"availableModels"`
	AvailableColors   []string            `json:"availableColors"`
	Media             []catalog.MediaView `json:"media"`
	Products          []models.Product    `json:"products,omitempty"`
	TzitzitImage      string              `json:"tzitzitImage,omitempty"`
	CustomInquiryURL  string              `json:"customInquiryUrl,omitempty"`
}

// GetCatalogView is the handler for GET /v1/catalog/view. The selection
// tuple arrives as query parameters and is applied top-down so the
// cascade reset and auto-select run exactly as they would for a live
// session replay.
func (h *Handlers) GetCatalogView(c *gin.Context) {
	products := h.Catalog.Products(c.Request.Context())
	engine := catalog.NewEngine(products)

	apply := func(level catalog.Level, value string) {
		if value != "" {
			engine.Apply(level, value)
		}
	}
	apply(catalog.LevelGender, c.Query("gender"))
	apply(catalog.LevelType, c.Query("type"))
	apply(catalog.LevelEdition, c.Query("edition"))
	apply(catalog.LevelModel, c.Query("model"))
	apply(catalog.LevelColor, c.Query("color"))

	resp := catalogViewResponse{
		Selection:         engine.Selection(),
		AvailableGenders:  engine.AvailableGenders(),
		AvailableTypes:    engine.AvailableTypes(),
		AvailableEditions: engine.AvailableEditions(),
		AvailableModels:   engine.AvailableModels(),
		AvailableColors:   engine.AvailableColors(),
		Media:             engine.DisplayedMedia(),
		Products:          engine.DisplayedProducts(),
		TzitzitImage:      h.Catalog.TzitzitImage(c.Request.Context()),
	}

	// Personalizado is a designed exit from the cascade: no media, just
	// the WhatsApp inquiry link.
	if engine.Selection().Edition == catalog.EditionCustom {
		resp.CustomInquiryURL = customInquiryURL()
	}

	c.JSON(http.StatusOK, resp)
}

func customInquiryURL() string {
	msg := url.QueryEscape("Hola, quisiera más información sobre camisas personalizadas")
	return fmt.Sprintf("https://wa.me/%s?text=%s", config.WhatsAppNumber, msg)
}
