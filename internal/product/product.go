// internal/product/product.go
//
// Product domain: draft, normalized record, and the category enumeration.
//
// Context
//   User input is always text before parsing, so a form session works on a
//   Draft whose fields are all strings.  A Product is the normalized record
//   built from a Draft only after every rule in rules.go passes.  It is
//   never constructed in a partially-valid state.
//
// Style
//   Two-space sentence spacing, Oxford comma, concise inline notes.
//
//------------------------------------------------------------------------------

package product

import "fmt"

// -----------------------------------------------------------------------------
// Fields
// -----------------------------------------------------------------------------

// Field is a form field key.  Values match the JSON wire names.
type Field string

const (
	FieldName          Field = "name"
	FieldDescription   Field = "description"
	FieldPrice         Field = "price"
	FieldCategory      Field = "category"
	FieldSKU           Field = "sku"
	FieldStockQuantity Field = "stockQuantity"
	FieldImageURL      Field = "imageUrl"
)

// Fields lists every field in form order.
var Fields = []Field{
	FieldName,
	FieldDescription,
	FieldPrice,
	FieldCategory,
	FieldSKU,
	FieldStockQuantity,
	FieldImageURL,
}

// ParseField converts a raw key (form input name, URL segment) into a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown product field %q", s)
}

// order returns the position of f in Fields, or len(Fields) when unknown.
func (f Field) order() int {
	for i, g := range Fields {
		if g == f {
			return i
		}
	}
	return len(Fields)
}

// -----------------------------------------------------------------------------
// Categories
// -----------------------------------------------------------------------------

// Category is one of the fixed product categories.
type Category string

// Categories is the closed set of accepted categories, in display order.
var Categories = []Category{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Books",
	"Toys & Games",
	"Health & Beauty",
	"Food & Beverages",
}

// Valid reports whether c is a member of Categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// CategoryNames returns Categories as plain strings (select options).
func CategoryNames() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return out
}

// -----------------------------------------------------------------------------
// Draft
// -----------------------------------------------------------------------------

// Draft is the in-progress, all-text form state.  The zero value is the empty
// draft a form starts with.
type Draft struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	Category      string `json:"category"`
	SKU           string `json:"sku"`
	StockQuantity string `json:"stockQuantity"`
	ImageURL      string `json:"imageUrl"`
}

// Get returns the raw value of field f.  Unknown fields read as "".
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldDescription:
		return d.Description
	case FieldPrice:
		return d.Price
	case FieldCategory:
		return d.Category
	case FieldSKU:
		return d.SKU
	case FieldStockQuantity:
		return d.StockQuantity
	case FieldImageURL:
		return d.ImageURL
	}
	return ""
}

// Set stores v into field f.  Unknown fields are ignored.
func (d *Draft) Set(f Field, v string) {
	switch f {
	case FieldName:
		d.Name = v
	case FieldDescription:
		d.Description = v
	case FieldPrice:
		d.Price = v
	case FieldCategory:
		d.Category = v
	case FieldSKU:
		d.SKU = v
	case FieldStockQuantity:
		d.StockQuantity = v
	case FieldImageURL:
		d.ImageURL = v
	}
}

// Values returns the draft as a field-keyed map, handy for templates.
func (d Draft) Values() map[string]string {
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		out[string(f)] = d.Get(f)
	}
	return out
}

// -----------------------------------------------------------------------------
// Product
// -----------------------------------------------------------------------------

// Product is the normalized, fully validated record.  Optional fields are nil
// when the user left them blank and are omitted from JSON.
type Product struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      Category `json:"category"`
	SKU           *string  `json:"sku,omitempty"`
	StockQuantity int      `json:"stockQuantity"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}

// HasSKU reports whether the optional SKU is present.
func (p Product) HasSKU() bool { return p.SKU != nil }

// HasImage reports whether the optional image URL is present.
func (p Product) HasImage() bool { return p.ImageURL != nil }

// SKUValue returns the SKU or "" when absent.
func (p Product) SKUValue() string {
	if p.SKU == nil {
		return ""
	}
	return *p.SKU
}

// ImageURLValue returns the image URL or "" when absent.
func (p Product) ImageURLValue() string {
	if p.ImageURL == nil {
		return ""
	}
	return *p.ImageURL
}

// PriceLabel formats the price with two decimals, as the list view shows it.
func (p Product) PriceLabel() string { return fmt.Sprintf("%.2f", p.Price) }
