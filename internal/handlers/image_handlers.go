package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/gin-gonic/gin"
)

// mediaClient fetches upstream assets for the proxy endpoint.
var mediaClient = &http.Client{Timeout: 30 * time.Second}

// ProxyImage is the handler for GET /v1/images. It streams the NocoDB
// asset named by the path query parameter, attaching the access token on
// the way out and a long-lived cache header on the way back. The core
// only ever emits these path-encoded references; this is the single
// place that talks to the media store.
func (h *Handlers) ProxyImage(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path parameter"})
		return
	}

	upstream := config.NocoBaseURL + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build upstream request"})
		return
	}
	req.Header.Set("xc-token", config.NocoToken)

	resp, err := mediaClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch image"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(resp.StatusCode, gin.H{"error": "Error fetching image: " + resp.Status})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
