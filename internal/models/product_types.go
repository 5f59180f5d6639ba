package models

// ProductType discriminates the two record kinds coming out of NocoDB.
type ProductType string

const (
	TypeGarment   ProductType = "camisa"
	TypeAccessory ProductType = "articulo"
)

// MediaKind tells the frontend whether to render an image or a video tile.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaItem is a single proxied asset reference. Source always points at
// our /v1/images endpoint, never at the NocoDB store directly.
type MediaItem struct {
	Source string    `json:"src"`
	Order  int       `json:"order"`
	Kind   MediaKind `json:"type"`
}

// Variant is one concrete purchasable configuration of a Product.
// Identity key is the (edition, model, color, gender) tuple; variants
// sharing a key are merged during normalization.
type Variant struct {
	ID          string      `json:"id"`
	Edition     string      `json:"edition,omitempty"`
	Model       string      `json:"model,omitempty"`
	Color       string      `json:"color,omitempty"`
	Gender      string      `json:"gender"`
	Price       float64     `json:"price"`
	Sizes       []string    `json:"sizes"`
	Media       []MediaItem `json:"media"`
	Description string      `json:"description,omitempty"`
}

// Key returns the variant identity tuple used by the merge step.
// Missing fields are treated as empty strings.
func (v Variant) Key() [4]string {
	return [4]string{v.Edition, v.Model, v.Color, v.Gender}
}

// Product is a logical grouping of variants. Garments group by edition,
// accessories by name. Editions/Models/Colors are garment-only facets
// and stay nil for accessories.
type Product struct {
	ID          string      `json:"id"`
	Type        ProductType `json:"type"`
	Name        string      `json:"name"`
	BasePrice   float64     `json:"basePrice"`
	Description string      `json:"description,omitempty"`
	Variants    []Variant   `json:"variants"`

	// Aggregate filter facets: deduplicated union, first-seen order.
	Genders  []string `json:"genders"`
	Editions []string `json:"editions,omitempty"`
	Models   []string `json:"models,omitempty"`
	Colors   []string `json:"colors,omitempty"`
	Sizes    []string `json:"sizes"`
}

// HasGender reports whether any variant of this product serves the gender.
func (p Product) HasGender(gender string) bool {
	for _, g := range p.Genders {
		if g == gender {
			return true
		}
	}
	return false
}

// HasEdition reports whether this garment carries the edition facet.
func (p Product) HasEdition(edition string) bool {
	for _, e := range p.Editions {
		if e == edition {
			return true
		}
	}
	return false
}

// --- Raw NocoDB records ---

// Attachment is one entry of a record's "imagen" array.
type Attachment struct {
	Path     string `json:"path"`
	MimeType string `json:"mimetype"`
}

// GarmentRecord is a raw row from the camisas table. Fields are
// loosely typed upstream; price arrives as a string.
type GarmentRecord struct {
	ID          int64        `json:"Id"`
	Edition     string       `json:"edicion"`
	Model       string       `json:"modelo"`
	Color       string       `json:"color"`
	Gender      string       `json:"genero"`
	Price       string       `json:"precio"`
	Sizes       string       `json:"tallas"`
	Description string       `json:"descripcion"`
	Media       []Attachment `json:"imagen"`
}

// AccessoryRecord is a raw row from the articulos table.
type AccessoryRecord struct {
	ID          int64        `json:"Id"`
	Name        string       `json:"nombre_articulo"`
	Gender      string       `json:"genero"`
	Price       string       `json:"precio"`
	Sizes       string       `json:"tallas"`
	Description string       `json:"descripcion"`
	Media       []Attachment `json:"imagen"`
}
