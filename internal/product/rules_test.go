// internal/product/rules_test.go
//
// Unit-tests for the product rule table.
//
// Run: go test ./internal/product -v

package product

import (
	"reflect"
	"strings"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Name:          "Widget",
		Description:   "A widget",
		Price:         "9.99",
		Category:      "Electronics",
		SKU:           "",
		StockQuantity: "5",
		ImageURL:      "",
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	if errs := Validate(validDraft()); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidate_EmptyDraftFlagsEveryRequiredField(t *testing.T) {
	errs := Validate(Draft{})

	want := map[Field]string{
		FieldName:          MsgNameRequired,
		FieldDescription:   MsgDescriptionRequired,
		FieldPrice:         MsgPriceRequired,
		FieldCategory:      MsgCategoryRequired,
		FieldStockQuantity: MsgStockRequired,
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for f, msg := range want {
		if got := errs.Message(f); got != msg {
			t.Errorf("%s: message = %q, want %q", f, got, msg)
		}
		if errs[f].Code != CodeRequired {
			t.Errorf("%s: code = %s, want Required", f, errs[f].Code)
		}
	}
	if errs.Has(FieldSKU) || errs.Has(FieldImageURL) {
		t.Fatalf("optional fields must not be required: %v", errs)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		code  Code // "" means valid
	}{
		{"name whitespace only", FieldName, "   ", CodeRequired},
		{"name at limit", FieldName, strings.Repeat("n", 100), ""},
		{"name over limit", FieldName, strings.Repeat("n", 101), CodeTooLong},
		{"name counts runes", FieldName, strings.Repeat("é", 100), ""},
		{"description tab only", FieldDescription, "\t", CodeRequired},
		{"description whitespace only", FieldDescription, "   ", CodeRequired},
		{"description at limit", FieldDescription, strings.Repeat("d", 1000), ""},
		{"description over limit", FieldDescription, strings.Repeat("d", 1001), CodeTooLong},
		{"price empty", FieldPrice, "", CodeRequired},
		{"price whitespace only", FieldPrice, "   ", CodeInvalidNumber},
		{"price zero", FieldPrice, "0", CodeInvalidNumber},
		{"price smallest cent", FieldPrice, "0.01", ""},
		{"price negative", FieldPrice, "-3", CodeInvalidNumber},
		{"price text", FieldPrice, "abc", CodeInvalidNumber},
		{"price trailing junk", FieldPrice, "9.99abc", CodeInvalidNumber},
		{"price NaN", FieldPrice, "NaN", CodeInvalidNumber},
		{"price Inf", FieldPrice, "Inf", CodeInvalidNumber},
		{"price padded", FieldPrice, " 12.5 ", ""},
		{"category empty", FieldCategory, "", CodeRequired},
		{"category unknown", FieldCategory, "Weapons", CodeRequired},
		{"category member", FieldCategory, "Home & Garden", ""},
		{"sku empty", FieldSKU, "", ""},
		{"sku at limit", FieldSKU, strings.Repeat("s", 50), ""},
		{"sku over limit", FieldSKU, strings.Repeat("s", 51), CodeTooLong},
		{"stock empty", FieldStockQuantity, "", CodeRequired},
		{"stock whitespace only", FieldStockQuantity, "  ", CodeInvalidInteger},
		{"stock negative", FieldStockQuantity, "-1", CodeInvalidInteger},
		{"stock zero", FieldStockQuantity, "0", ""},
		{"stock fraction", FieldStockQuantity, "5.5", CodeInvalidInteger},
		{"stock text", FieldStockQuantity, "many", CodeInvalidInteger},
		{"image empty", FieldImageURL, "", ""},
		{"image absolute", FieldImageURL, "https://example.com/image.jpg", ""},
		{"image no scheme", FieldImageURL, "example.com/image.jpg", CodeInvalidURL},
		{"image garbage", FieldImageURL, "not a url", CodeInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.Set(tt.field, tt.value)

			fe, ok := ValidateField(d, tt.field)
			if tt.code == "" {
				if !ok {
					t.Fatalf("expected valid, got %s (%s)", fe.Code, fe.Message)
				}
				return
			}
			if ok {
				t.Fatalf("expected %s, got valid", tt.code)
			}
			if fe.Code != tt.code {
				t.Fatalf("code = %s, want %s", fe.Code, tt.code)
			}

			// Whole-record mode must agree with single-field mode.
			all := Validate(d)
			if all[tt.field] != fe {
				t.Fatalf("Validate()[%s] = %+v, ValidateField = %+v", tt.field, all[tt.field], fe)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	d := Draft{Name: " ", Price: "0", Category: "x", StockQuantity: "-1", ImageURL: "nope"}
	first := Validate(d)
	second := Validate(d)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not deterministic:\n%v\n%v", first, second)
	}
}

func TestValidate_CategoryScenario(t *testing.T) {
	d := validDraft()
	d.Category = ""
	errs := Validate(d)
	if got := errs.Message(FieldCategory); got != "Category is required" {
		t.Fatalf("category message = %q", got)
	}
}

func TestErrorSet_FieldsInFormOrder(t *testing.T) {
	errs := Validate(Draft{})
	got := errs.Fields()
	want := []Field{FieldName, FieldDescription, FieldPrice, FieldCategory, FieldStockQuantity}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
}

func TestParseField(t *testing.T) {
	if f, err := ParseField("stockQuantity"); err != nil || f != FieldStockQuantity {
		t.Fatalf("ParseField(stockQuantity) = %q, %v", f, err)
	}
	if _, err := ParseField("weight"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
