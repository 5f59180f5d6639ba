package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/alefmoda/alef-golang/internal/models"
)

const fetchPageSize = 100

// Client fetches raw records from the NocoDB table API. All fetch
// methods degrade to an empty list on failure: catalog availability must
// never depend on the upstream being reachable.
type Client struct {
	token      string
	httpClient *http.Client

	garmentURL   string
	accessoryURL string
	tzitzitURL   string
}

// NewClient builds a NocoDB client over the three table endpoints.
func NewClient(token, garmentURL, accessoryURL, tzitzitURL string) *Client {
	return &Client{
		token:        token,
		garmentURL:   garmentURL,
		accessoryURL: accessoryURL,
		tzitzitURL:   tzitzitURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type recordPage struct {
	List     json.RawMessage `json:"list"`
	PageInfo struct {
		IsLastPage bool `json:"isLastPage"`
	} `json:"pageInfo"`
}

// FetchGarments returns every row of the camisas table.
func (c *Client) FetchGarments(ctx context.Context) []models.GarmentRecord {
	var records []models.GarmentRecord
	c.fetchAll(ctx, c.garmentURL, func(list json.RawMessage) (int, error) {
		var page []models.GarmentRecord
		if err := json.Unmarshal(list, &page); err != nil {
			return 0, err
		}
		records = append(records, page...)
		return len(page), nil
	})
	return records
}

// FetchAccessories returns every row of the articulos table.
func (c *Client) FetchAccessories(ctx context.Context) []models.AccessoryRecord {
	var records []models.AccessoryRecord
	c.fetchAll(ctx, c.accessoryURL, func(list json.RawMessage) (int, error) {
		var page []models.AccessoryRecord
		if err := json.Unmarshal(list, &page); err != nil {
			return 0, err
		}
		records = append(records, page...)
		return len(page), nil
	})
	return records
}

type tzitzitRecord struct {
	Name  string              `json:"nombre"`
	Media []models.Attachment `json:"imagen"`
}

// FetchTzitzitImage looks up the upsell preview image (the row named
// "tzitzits_add") and returns its proxied source, or "" when absent.
func (c *Client) FetchTzitzitImage(ctx context.Context) string {
	var src string
	c.fetchAll(ctx, c.tzitzitURL, func(list json.RawMessage) (int, error) {
		var page []tzitzitRecord
		if err := json.Unmarshal(list, &page); err != nil {
			return 0, err
		}
		for _, rec := range page {
			if rec.Name == "tzitzits_add" && len(rec.Media) > 0 && rec.Media[0].Path != "" {
				src = ImageProxyPath + "?path=" + url.QueryEscape(rec.Media[0].Path)
			}
		}
		return len(page), nil
	})
	return src
}

// fetchAll walks the paginated record endpoint until the API reports the
// last page. Errors are logged and cut the walk short; whatever was
// decoded so far is kept.
func (c *Client) fetchAll(ctx context.Context, baseURL string, decode func(json.RawMessage) (int, error)) {
	offset := 0
	for {
		page, err := c.fetchPage(ctx, baseURL, offset)
		if err != nil {
			log.Printf("NocoDB fetch error (%s): %v", baseURL, err)
			return
		}

		n, err := decode(page.List)
		if err != nil {
			log.Printf("NocoDB decode error (%s): %v", baseURL, err)
			return
		}

		if page.PageInfo.IsLastPage || n < fetchPageSize {
			return
		}
		offset += n
	}
}

func (c *Client) fetchPage(ctx context.Context, baseURL string, offset int) (*recordPage, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("offset", fmt.Sprintf("%d", offset))
	q.Set("limit", fmt.Sprintf("%d", fetchPageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var page recordPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}
