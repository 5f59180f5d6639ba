package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/alefmoda/alef-golang/internal/models"
	"github.com/gosimple/slug"
)

// defaultGender is applied when a record arrives without a genero field.
const defaultGender = "hombre"

// ImageProxyPath is the local endpoint every media reference is routed
// through; the frontend never talks to the NocoDB store directly.
const ImageProxyPath = "/v1/images"

// Normalize turns the two raw NocoDB record feeds into grouped products.
// It never fails: records without a grouping key are skipped and
// malformed scalars fall back to defaults, because the upstream table is
// edited by hand and the catalog has to stay up regardless.
func Normalize(garments []models.GarmentRecord, accessories []models.AccessoryRecord) []models.Product {
	byID := make(map[string]*models.Product)
	var order []string

	upsert := func(id string, build func() *models.Product) *models.Product {
		if p, ok := byID[id]; ok {
			return p
		}
		p := build()
		byID[id] = p
		order = append(order, id)
		return p
	}

	for _, rec := range garments {
		if rec.Edition == "" {
			continue // tolerated data-quality gap, not an error
		}

		gender := normalizeGender(rec.Gender)
		price := parsePrice(rec.Price)
		sizes := parseSizes(rec.Sizes)

		id := productID(models.TypeGarment, rec.Edition)
		p := upsert(id, func() *models.Product {
			return &models.Product{
				ID:          id,
				Type:        models.TypeGarment,
				Name:        displayName(rec.Edition),
				BasePrice:   price,
				Description: rec.Description,
			}
		})

		appendUnique(&p.Genders, gender)
		appendUnique(&p.Editions, rec.Edition)
		if rec.Model != "" {
			appendUnique(&p.Models, rec.Model)
		}
		if rec.Color != "" {
			appendUnique(&p.Colors, rec.Color)
		}
		for _, s := range sizes {
			appendUnique(&p.Sizes, s)
		}

		p.Variants = append(p.Variants, models.Variant{
			ID:          strconv.FormatInt(rec.ID, 10),
			Edition:     rec.Edition,
			Model:       rec.Model,
			Color:       rec.Color,
			Gender:      gender,
			Price:       price,
			Sizes:       sizes,
			Media:       extractMedia(rec.Media, true),
			Description: rec.Description,
		})
	}

	for _, rec := range accessories {
		if rec.Name == "" {
			continue
		}

		gender := normalizeGender(rec.Gender)
		price := parsePrice(rec.Price)
		sizes := parseSizes(rec.Sizes)

		id := productID(models.TypeAccessory, rec.Name)
		p := upsert(id, func() *models.Product {
			return &models.Product{
				ID:          id,
				Type:        models.TypeAccessory,
				Name:        displayName(rec.Name),
				BasePrice:   price,
				Description: rec.Description,
			}
		})

		appendUnique(&p.Genders, gender)
		for _, s := range sizes {
			appendUnique(&p.Sizes, s)
		}

		p.Variants = append(p.Variants, models.Variant{
			ID:          strconv.FormatInt(rec.ID, 10),
			Gender:      gender,
			Price:       price,
			Sizes:       sizes,
			Media:       extractMedia(rec.Media, false),
			Description: rec.Description,
		})
	}

	products := make([]models.Product, 0, len(order))
	for _, id := range order {
		p := byID[id]
		p.Variants = mergeVariants(p.Variants)
		products = append(products, *p)
	}
	return products
}

// mergeVariants collapses variants sharing the (edition, model, color,
// gender) identity key. Media sequences are concatenated, deduplicated
// by source and re-sorted ascending by order.
func mergeVariants(variants []models.Variant) []models.Variant {
	byKey := make(map[[4]string]int)
	merged := make([]models.Variant, 0, len(variants))

	for _, v := range variants {
		key := v.Key()
		if i, ok := byKey[key]; ok {
			merged[i].Media = append(merged[i].Media, v.Media...)
			for _, s := range v.Sizes {
				appendUnique(&merged[i].Sizes, s)
			}
			continue
		}
		byKey[key] = len(merged)
		merged = append(merged, v)
	}

	for i := range merged {
		merged[i].Media = dedupMedia(merged[i].Media)
	}
	return merged
}

// dedupMedia drops repeated sources (first occurrence wins) and sorts
// ascending by order.
func dedupMedia(media []models.MediaItem) []models.MediaItem {
	seen := make(map[string]bool, len(media))
	out := media[:0]
	for _, m := range media {
		if seen[m.Source] {
			continue
		}
		seen[m.Source] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// extractMedia maps a record's attachment array onto proxied MediaItems.
// Position in the array becomes the display order. Garment attachments
// may be videos; accessory attachments are always treated as images.
func extractMedia(attachments []models.Attachment, allowVideo bool) []models.MediaItem {
	var items []models.MediaItem
	for idx, att := range attachments {
		if att.Path == "" {
			continue
		}
		kind := models.MediaImage
		if allowVideo && strings.Contains(att.MimeType, "video") {
			kind = models.MediaVideo
		}
		items = append(items, models.MediaItem{
			Source: ImageProxyPath + "?path=" + url.QueryEscape(att.Path),
			Order:  idx,
			Kind:   kind,
		})
	}
	return items
}

func productID(kind models.ProductType, key string) string {
	return fmt.Sprintf("%s-%s", kind, slug.Make(key))
}

func displayName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func normalizeGender(raw string) string {
	if raw == "" {
		return defaultGender
	}
	return strings.ToLower(raw)
}

func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return price
}

func parseSizes(raw string) []string {
	if raw == "" {
		return nil
	}
	var sizes []string
	for _, tok := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(tok); s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

func appendUnique(list *[]string, value string) {
	for _, v := range *list {
		if v == value {
			return
		}
	}
	*list = append(*list, value)
}
