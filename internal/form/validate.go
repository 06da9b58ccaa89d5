// internal/form/validate.go
//
// Product forms: declarative schema validation.
//
// Context
//   The schema form describes its rules as struct tags on productSchema and
//   lets go-playground/validator enforce them.  Each tag is registered from
//   the entry of product.Rules for the same field, so the rule table stays
//   the single source of truth and this layer only describes which rule
//   guards which field.
//
// Workflow
//   •  NewSchemaValidator registers one custom tag per product field and
//      reports struct fields under their JSON names.
//   •  Validate copies a Draft into productSchema, runs v.Struct, and maps
//      each validator.FieldError back to the product.FieldError that the
//      rule describes.
//   •  ValidateField runs v.Var with the tag declared for that field.
//
//------------------------------------------------------------------------------

package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yanizio/productform/internal/product"
)

// productSchema is the declarative description of a product draft.
type productSchema struct {
	Name          string `json:"name"          validate:"product_name"`
	Description   string `json:"description"   validate:"product_description"`
	Price         string `json:"price"         validate:"product_price"`
	Category      string `json:"category"      validate:"product_category"`
	SKU           string `json:"sku"           validate:"product_sku"`
	StockQuantity string `json:"stockQuantity" validate:"product_stock_quantity"`
	ImageURL      string `json:"imageUrl"      validate:"product_image_url"`
}

// ruleTags binds each validator tag to the product field whose rule it runs.
var ruleTags = map[string]product.Field{
	"product_name":           product.FieldName,
	"product_description":    product.FieldDescription,
	"product_price":          product.FieldPrice,
	"product_category":       product.FieldCategory,
	"product_sku":            product.FieldSKU,
	"product_stock_quantity": product.FieldStockQuantity,
	"product_image_url":      product.FieldImageURL,
}

// SchemaValidator validates drafts through validator/v10.  It satisfies
// product.Validator and is safe for concurrent use.
type SchemaValidator struct {
	v     *validator.Validate
	rules product.RuleTable
	tags  map[product.Field]string // field → declared tag
}

var _ product.Validator = (*SchemaValidator)(nil)

// NewSchemaValidator builds a validator bound to rules (normally
// product.Rules).
func NewSchemaValidator(rules product.RuleTable) (*SchemaValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for tag, field := range ruleTags {
		check, ok := rules[field]
		if !ok {
			return nil, fmt.Errorf("schema tag %s: no rule for field %s", tag, field)
		}
		fn := func(fl validator.FieldLevel) bool {
			_, ok := check(fl.Field().String())
			return ok
		}
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s: %w", tag, err)
		}
	}

	tags, err := declaredTags()
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{v: v, rules: rules, tags: tags}, nil
}

// defaultSchema is shared by SchemaForm instances built without an explicit
// validator.
var defaultSchema = mustSchema()

func mustSchema() *SchemaValidator {
	s, err := NewSchemaValidator(product.Rules)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// product.Validator
// -----------------------------------------------------------------------------

// Validate runs the whole schema against d.
func (s *SchemaValidator) Validate(d product.Draft) product.ErrorSet {
	errs := product.ErrorSet{}

	err := s.v.Struct(toSchema(d))
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Invalid input to the validator itself; treat every field as failing
		// its rule so submission stays blocked.
		return product.Rules.Validate(d)
	}
	for _, fe := range verrs {
		f, perr := product.ParseField(fe.Field())
		if perr != nil {
			continue
		}
		errs[f] = s.describe(f, d.Get(f))
	}
	return errs
}

// ValidateField runs the tag declared for f against its raw value.
func (s *SchemaValidator) ValidateField(d product.Draft, f product.Field) (product.FieldError, bool) {
	tag, ok := s.tags[f]
	if !ok {
		return product.FieldError{}, true
	}
	raw := d.Get(f)
	if err := s.v.Var(raw, tag); err != nil {
		return s.describe(f, raw), false
	}
	return product.FieldError{}, true
}

// describe asks the rule table why raw failed.
func (s *SchemaValidator) describe(f product.Field, raw string) product.FieldError {
	fe, _ := s.rules[f](raw)
	return fe
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func toSchema(d product.Draft) productSchema {
	return productSchema{
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		Category:      d.Category,
		SKU:           d.SKU,
		StockQuantity: d.StockQuantity,
		ImageURL:      d.ImageURL,
	}
}

// jsonName reports struct fields under their JSON key.
func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// declaredTags reads the validate tag of every productSchema field.
func declaredTags() (map[product.Field]string, error) {
	t := reflect.TypeOf(productSchema{})
	out := make(map[product.Field]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f, err := product.ParseField(jsonName(sf))
		if err != nil {
			return nil, fmt.Errorf("productSchema.%s: %w", sf.Name, err)
		}
		out[f] = sf.Tag.Get("validate")
	}
	return out, nil
}
