package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alefmoda/alef-golang/internal/catalog"
	"github.com/alefmoda/alef-golang/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nocoPage(records []map[string]any) []byte {
	body, _ := json.Marshal(map[string]any{
		"list":     records,
		"pageInfo": map[string]any{"isLastPage": true},
	})
	return body
}

// newTestHandlers serves a one-garment, one-accessory catalog from a
// fake NocoDB. The DB stays nil: these routes never touch it.
func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garments":
			w.Write(nocoPage([]map[string]any{{
				"Id": 1, "edicion": "shemah_israel", "modelo": "modelo_1",
				"color": "blanco", "genero": "masculino", "precio": "35.4",
				"tallas": "S,M,L",
				"imagen": []map[string]any{{"path": "download/a.jpg", "mimetype": "image/jpeg"}},
			}}))
		case "/accessories":
			w.Write(nocoPage([]map[string]any{{
				"Id": 10, "nombre_articulo": "talith", "genero": "masculino", "precio": "17.5",
			}}))
		default:
			w.Write(nocoPage(nil))
		}
	}))
	t.Cleanup(server.Close)

	client := catalog.NewClient("secret",
		server.URL+"/garments", server.URL+"/accessories", server.URL+"/tzitzit")
	return &Handlers{Catalog: catalog.NewStore(client, time.Hour)}
}

func performRequest(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/v1/catalog", h.GetCatalog)
	router.GET("/v1/catalog/view", h.GetCatalogView)
	router.GET("/v1/images", h.ProxyImage)
	return router
}

func TestGetCatalog(t *testing.T) {
	h := newTestHandlers(t)
	router := newTestRouter(h)

	w := performRequest(router, http.MethodGet, "/v1/catalog")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products         []json.RawMessage `json:"products"`
		AvailableGenders []string          `json:"availableGenders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
	assert.Equal(t, []string{"masculino"}, resp.AvailableGenders)
}

func TestGetCatalogView_DrillDown(t *testing.T) {
	h := newTestHandlers(t)
	router := newTestRouter(h)

	w := performRequest(router, http.MethodGet,
		"/v1/catalog/view?gender=masculino&type=camisa&edition=shemah_israel")
	require.Equal(t, http.StatusOK, w.Code)

	var resp catalogViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "shemah_israel", resp.Selection.Edition)
	assert.Equal(t, []string{"modelo_1"}, resp.AvailableModels)
	assert.NotEmpty(t, resp.Media)
}

func TestGetCatalogView_CustomEdition(t *testing.T) {
	config.WhatsAppNumber = "593000000000"
	h := newTestHandlers(t)
	router := newTestRouter(h)

	w := performRequest(router, http.MethodGet,
		"/v1/catalog/view?gender=masculino&type=camisa&edition=Personalizado")
	require.Equal(t, http.StatusOK, w.Code)

	var resp catalogViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Media)
	assert.Empty(t, resp.AvailableModels)
	assert.Empty(t, resp.AvailableColors)
	assert.Contains(t, resp.CustomInquiryURL, "wa.me/593000000000")
}

func TestProxyImage_RequiresPath(t *testing.T) {
	h := newTestHandlers(t)
	router := newTestRouter(h)

	w := performRequest(router, http.MethodGet, "/v1/images")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProxyImage_StreamsUpstreamAsset(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download/a.jpg", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("xc-token"))
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpegbytes"))
	}))
	defer upstream.Close()

	config.NocoBaseURL = upstream.URL
	config.NocoToken = "secret"

	h := newTestHandlers(t)
	router := newTestRouter(h)

	w := performRequest(router, http.MethodGet, "/v1/images?path=download/a.jpg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpegbytes", w.Body.String())
	assert.Equal(t, "public, max-age=31536000, immutable", w.Header().Get("Cache-Control"))
}
