package catalog

import (
	"sort"

	"github.com/alefmoda/alef-golang/internal/models"
)

// EditionCustom is the sentinel edition meaning "no fixed catalog".
// Selecting it routes the shopper to the WhatsApp inquiry path: the
// engine reports no models, no colors and no media for it.
const EditionCustom = "Personalizado"

// TzitziyotPrice is the flat add-on applied when the shopper opts into
// the tzitziyot upsell on a garment.
const TzitziyotPrice = 6.00

// Level identifies one step of the selection hierarchy. Levels form a
// strict top-to-bottom dependency: setting a level always clears every
// level below it.
type Level int

const (
	LevelGender Level = iota
	LevelType
	LevelEdition
	LevelModel
	LevelColor
)

// Selection is the transient per-session filter tuple. Empty string
// means "not selected".
type Selection struct {
	Gender      string `json:"gender,omitempty"`
	ProductType string `json:"productType,omitempty"`
	Edition     string `json:"edition,omitempty"`
	Model       string `json:"model,omitempty"`
	Color       string `json:"color,omitempty"`
}

// MediaView is one displayed media tile plus the variant it resolves to,
// so a click can jump straight to a concrete purchasable configuration.
type MediaView struct {
	models.MediaItem
	ProductID string         `json:"productId"`
	Variant   models.Variant `json:"variant"`
}

// Engine derives the valid options, visible media and resolvable variant
// for the current selection over a normalized product list. It is pure
// synchronous derivation; the only side effects are the cascading reset
// on Apply and the singleton auto-select.
type Engine struct {
	products []models.Product
	sel      Selection
}

// NewEngine builds an engine over a normalized catalog and runs the
// singleton auto-select (a catalog with one gender starts pre-selected).
func NewEngine(products []models.Product) *Engine {
	e := &Engine{products: products}
	e.autoSelect()
	return e
}

// Selection returns the current selection tuple.
func (e *Engine) Selection() Selection {
	return e.sel
}

// Apply sets or clears one selection level and cascades the reset down
// the hierarchy. An empty value is an explicit clear and suppresses the
// auto-select for that level. Apply never fails: a set on a level whose
// parent levels are still unset, or on a garment-only level while an
// accessory type is active, is ignored.
func (e *Engine) Apply(level Level, value string) {
	if value != "" && !e.settable(level) {
		return
	}

	switch level {
	case LevelGender:
		e.sel.Gender = value
		e.sel.ProductType = ""
		e.sel.Edition = ""
		e.sel.Model = ""
		e.sel.Color = ""
	case LevelType:
		e.sel.ProductType = value
		e.sel.Edition = ""
		e.sel.Model = ""
		e.sel.Color = ""
	case LevelEdition:
		e.sel.Edition = value
		e.sel.Model = ""
		e.sel.Color = ""
	case LevelModel:
		e.sel.Model = value
		e.sel.Color = ""
	case LevelColor:
		e.sel.Color = value
	}

	if value != "" {
		e.autoSelect()
	}
}

// settable enforces the hierarchy: every level above the one being set
// must already hold a value, and edition/model/color only exist for
// garments.
func (e *Engine) settable(level Level) bool {
	switch level {
	case LevelGender:
		return true
	case LevelType:
		return e.sel.Gender != ""
	case LevelEdition:
		return e.sel.Gender != "" && e.sel.ProductType == string(models.TypeGarment)
	case LevelModel:
		return e.sel.Edition != "" && e.sel.ProductType == string(models.TypeGarment)
	case LevelColor:
		return e.sel.Model != "" && e.sel.ProductType == string(models.TypeGarment)
	}
	return false
}

// autoSelect fills a level when exactly one option exists for it. It
// only ever fills gender and product type; deeper levels stay a
// deliberate shopper choice.
func (e *Engine) autoSelect() {
	if e.sel.Gender == "" {
		if genders := e.AvailableGenders(); len(genders) == 1 {
			e.sel.Gender = genders[0]
		}
	}
	if e.sel.Gender != "" && e.sel.ProductType == "" {
		if types := e.AvailableTypes(); len(types) == 1 {
			e.sel.ProductType = types[0]
		}
	}
}

// AvailableGenders is the union of genders across the whole catalog,
// independent of the current selection.
func (e *Engine) AvailableGenders() []string {
	var genders []string
	for _, p := range e.products {
		for _, g := range p.Genders {
			appendUnique(&genders, g)
		}
	}
	return genders
}

// AvailableTypes is the union of product types under the current gender.
func (e *Engine) AvailableTypes() []string {
	if e.sel.Gender == "" {
		return nil
	}
	var types []string
	for _, p := range e.products {
		if p.HasGender(e.sel.Gender) {
			appendUnique(&types, string(p.Type))
		}
	}
	return types
}

// AvailableEditions is the union of editions across garment products
// under the current gender. Only meaningful when the garment type is
// active.
func (e *Engine) AvailableEditions() []string {
	if e.sel.ProductType != string(models.TypeGarment) {
		return nil
	}
	var editions []string
	for _, p := range e.garmentsForGender() {
		for _, ed := range p.Editions {
			appendUnique(&editions, ed)
		}
	}
	return editions
}

// AvailableModels lists the models reachable under the current filters.
// Before an edition is chosen this is the coarse fan-out across every
// garment variant of the gender; the Personalizado edition has no model
// catalog at all.
func (e *Engine) AvailableModels() []string {
	if e.sel.Edition == EditionCustom {
		return nil
	}

	var modelSet []string
	for _, p := range e.garmentsForGender() {
		if e.sel.Edition != "" && !p.HasEdition(e.sel.Edition) {
			continue
		}
		for _, v := range p.Variants {
			if v.Gender != e.sel.Gender || v.Model == "" {
				continue
			}
			if e.sel.Edition != "" && v.Edition != e.sel.Edition {
				continue
			}
			appendUnique(&modelSet, v.Model)
		}
	}
	sort.Strings(modelSet)
	return modelSet
}

// AvailableColors lists the colors reachable under the current filters.
// Edition and model each narrow independently when set; colors are
// deliberately visible before a model is chosen, so the shopper can
// browse the coarser superset.
func (e *Engine) AvailableColors() []string {
	if e.sel.Edition == EditionCustom {
		return nil
	}

	var colors []string
	for _, p := range e.garmentsForGender() {
		if e.sel.Edition != "" && !p.HasEdition(e.sel.Edition) {
			continue
		}
		for _, v := range p.Variants {
			if v.Gender != e.sel.Gender || v.Color == "" {
				continue
			}
			if e.sel.Edition != "" && v.Edition != e.sel.Edition {
				continue
			}
			if e.sel.Model != "" && v.Model != e.sel.Model {
				continue
			}
			appendUnique(&colors, v.Color)
		}
	}
	return colors
}

// DisplayedMedia resolves the garment media tiles for the current
// selection: every set filter level must match exactly, unset levels
// don't narrow. The result is deduplicated by source (first occurrence
// wins) and sorted ascending by order. Accessories are displayed as
// products instead; see DisplayedProducts.
func (e *Engine) DisplayedMedia() []MediaView {
	if e.sel.ProductType != string(models.TypeGarment) || e.sel.Gender == "" {
		return nil
	}
	if e.sel.Edition == EditionCustom {
		return nil
	}

	var media []MediaView
	for _, p := range e.garmentsForGender() {
		if e.sel.Edition != "" && !p.HasEdition(e.sel.Edition) {
			continue
		}
		for _, v := range p.Variants {
			if v.Gender != e.sel.Gender {
				continue
			}
			if e.sel.Edition != "" && v.Edition != e.sel.Edition {
				continue
			}
			if e.sel.Model != "" && v.Model != e.sel.Model {
				continue
			}
			if e.sel.Color != "" && v.Color != e.sel.Color {
				continue
			}
			for _, m := range v.Media {
				media = append(media, MediaView{MediaItem: m, ProductID: p.ID, Variant: v})
			}
		}
	}

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

// DisplayedProducts resolves the accessory grid for the current gender.
func (e *Engine) DisplayedProducts() []models.Product {
	if e.sel.ProductType != string(models.TypeAccessory) || e.sel.Gender == "" {
		return nil
	}
	var out []models.Product
	for _, p := range e.products {
		if p.Type == models.TypeAccessory && p.HasGender(e.sel.Gender) {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) garmentsForGender() []models.Product {
	if e.sel.Gender == "" {
		return nil
	}
	var out []models.Product
	for _, p := range e.products {
		if p.Type == models.TypeGarment && p.HasGender(e.sel.Gender) {
			out = append(out, p)
		}
	}
	return out
}

// ResolvePrice computes the add-to-cart price: the matched variant's
// price when a concrete variant was resolved (e.g. a media tile click),
// else the product's base price, plus the flat tzitziyot surcharge when
// opted in.
func ResolvePrice(product models.Product, variant *models.Variant, withTzitziyot bool) float64 {
	price := product.BasePrice
	if variant != nil {
		price = variant.Price
	}
	if withTzitziyot {
		price += TzitziyotPrice
	}
	return price
}
