// internal/product/rules.go
//
// Product validation engine: the rule table.
//
// Context
//   Every rule lives in this file and nowhere else.  The manual form
//   controller calls Validate / ValidateField directly, while the schema
//   adapter (internal/form) registers each entry of Rules as a validator/v10
//   tag so its declarative layer produces the same ErrorSet.
//
// Workflow
//   •  Rules maps a Field to a check over its raw string value.
//   •  Validate runs every check and collects failures into an ErrorSet.
//   •  ValidateField runs one check (blur handling).
//   •  Rules are independent; no rule reads another field.
//
// Notes
//   •  Lengths count characters (runes) of the trimmed value.
//   •  Numbers are parsed strictly from the trimmed value.  "9.99abc" is not a
//      number and "5.5" is not an integer.
//   •  Two-space sentence spacing, Oxford comma.
//
//------------------------------------------------------------------------------

package product

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Length limits.
const (
	MaxNameLen        = 100
	MaxDescriptionLen = 1000
	MaxSKULen         = 50
)

// User-facing messages.
const (
	MsgNameRequired        = "Product name is required"
	MsgNameTooLong         = "Product name must be less than 100 characters"
	MsgDescriptionRequired = "Description is required"
	MsgDescriptionTooLong  = "Description must be less than 1000 characters"
	MsgPriceRequired       = "Price is required"
	MsgPriceInvalid        = "Price must be a positive number"
	MsgCategoryRequired    = "Category is required"
	MsgSKUTooLong          = "SKU must be less than 50 characters"
	MsgStockRequired       = "Stock quantity is required"
	MsgStockInvalid        = "Stock quantity must be a non-negative integer"
	MsgImageURLInvalid     = "Please enter a valid URL"
)

// Check validates one raw field value.  ok == false means the value failed
// and fe describes why.
type Check func(raw string) (fe FieldError, ok bool)

// RuleTable is the per-field rule set.  It satisfies Validator.
type RuleTable map[Field]Check

// Rules is the product rule table.
var Rules = RuleTable{
	FieldName:          checkName,
	FieldDescription:   checkDescription,
	FieldPrice:         checkPrice,
	FieldCategory:      checkCategory,
	FieldSKU:           checkSKU,
	FieldStockQuantity: checkStock,
	FieldImageURL:      checkImageURL,
}

// urlValidator backs the imageUrl rule with validator/v10's "url" tag.
var urlValidator = validator.New()

// -----------------------------------------------------------------------------
// Public API
// -----------------------------------------------------------------------------

// Validate runs the whole-record check against the product rule table.
func Validate(d Draft) ErrorSet { return Rules.Validate(d) }

// ValidateField runs the single-field check against the product rule table.
func ValidateField(d Draft, f Field) (FieldError, bool) { return Rules.ValidateField(d, f) }

// Validate returns every failing field of d.  It never mutates d.
func (t RuleTable) Validate(d Draft) ErrorSet {
	errs := ErrorSet{}
	for _, f := range Fields {
		if fe, ok := t.ValidateField(d, f); !ok {
			errs[f] = fe
		}
	}
	return errs
}

// ValidateField checks one field.  Fields without a rule always pass.
func (t RuleTable) ValidateField(d Draft, f Field) (FieldError, bool) {
	check, found := t[f]
	if !found {
		return FieldError{}, true
	}
	return check(d.Get(f))
}

// -----------------------------------------------------------------------------
// Field checks
// -----------------------------------------------------------------------------

func checkName(raw string) (FieldError, bool) {
	return requiredText(raw, MaxNameLen, MsgNameRequired, MsgNameTooLong)
}

func checkDescription(raw string) (FieldError, bool) {
	return requiredText(raw, MaxDescriptionLen, MsgDescriptionRequired, MsgDescriptionTooLong)
}

func checkPrice(raw string) (FieldError, bool) {
	if raw == "" {
		return FieldError{CodeRequired, MsgPriceRequired}, false
	}
	v, err := ParsePrice(raw)
	if err != nil || v <= 0 {
		return FieldError{CodeInvalidNumber, MsgPriceInvalid}, false
	}
	return FieldError{}, true
}

func checkCategory(raw string) (FieldError, bool) {
	if raw == "" || !Category(raw).Valid() {
		return FieldError{CodeRequired, MsgCategoryRequired}, false
	}
	return FieldError{}, true
}

func checkSKU(raw string) (FieldError, bool) {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) > MaxSKULen {
		return FieldError{CodeTooLong, MsgSKUTooLong}, false
	}
	return FieldError{}, true
}

func checkStock(raw string) (FieldError, bool) {
	if raw == "" {
		return FieldError{CodeRequired, MsgStockRequired}, false
	}
	v, err := ParseStock(raw)
	if err != nil || v < 0 {
		return FieldError{CodeInvalidInteger, MsgStockInvalid}, false
	}
	return FieldError{}, true
}

func checkImageURL(raw string) (FieldError, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return FieldError{}, true // optional
	}
	if err := urlValidator.Var(s, "url"); err != nil {
		return FieldError{CodeInvalidURL, MsgImageURLInvalid}, false
	}
	return FieldError{}, true
}

// requiredText is shared by name and description.
func requiredText(raw string, max int, requiredMsg, tooLongMsg string) (FieldError, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return FieldError{CodeRequired, requiredMsg}, false
	}
	if utf8.RuneCountInString(s) > max {
		return FieldError{CodeTooLong, tooLongMsg}, false
	}
	return FieldError{}, true
}

// -----------------------------------------------------------------------------
// Parsers
// -----------------------------------------------------------------------------

// ParsePrice parses a trimmed decimal.  NaN and ±Inf are rejected.
func ParsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// ParseStock parses a trimmed base-10 integer.
func ParseStock(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
