package product

import "strings"

// Validator is the capability shared by the manual and schema strategies.
type Validator interface {
	Validate(Draft) ErrorSet
	ValidateField(Draft, Field) (FieldError, bool)
}

var _ Validator = RuleTable(nil)

// Build normalizes a draft into a Product.  It validates first and returns the
// ErrorSet as the error when any rule fails, so a Product never exists in a
// partially-valid state.
func Build(d Draft) (Product, error) {
	return BuildWith(Rules, d)
}

// BuildWith is Build with an explicit validation strategy.
func BuildWith(v Validator, d Draft) (Product, error) {
	if errs := v.Validate(d); !errs.Empty() {
		return Product{}, errs
	}

	price, err := ParsePrice(d.Price)
	if err != nil {
		return Product{}, ErrorSet{FieldPrice: {CodeInvalidNumber, MsgPriceInvalid}}
	}
	stock, err := ParseStock(d.StockQuantity)
	if err != nil {
		return Product{}, ErrorSet{FieldStockQuantity: {CodeInvalidInteger, MsgStockInvalid}}
	}

	return Product{
		Name:          strings.TrimSpace(d.Name),
		Description:   strings.TrimSpace(d.Description),
		Price:         price,
		Category:      Category(d.Category),
		SKU:           optional(d.SKU),
		StockQuantity: stock,
		ImageURL:      optional(d.ImageURL),
	}, nil
}

// optional trims s and returns nil when nothing is left.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
