package product

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBuild_RoundTrip(t *testing.T) {
	p, err := Build(validDraft())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if p.Name != "Widget" || p.Description != "A widget" {
		t.Fatalf("text fields = %q / %q", p.Name, p.Description)
	}
	if p.Price != 9.99 {
		t.Fatalf("price = %v, want 9.99", p.Price)
	}
	if p.Category != "Electronics" {
		t.Fatalf("category = %q", p.Category)
	}
	if p.StockQuantity != 5 {
		t.Fatalf("stock = %d, want 5", p.StockQuantity)
	}
	if p.SKU != nil || p.ImageURL != nil {
		t.Fatalf("optional fields should be absent: sku=%v image=%v", p.SKU, p.ImageURL)
	}
}

func TestBuild_TrimsAndKeepsOptionals(t *testing.T) {
	d := validDraft()
	d.Name = "  Lamp  "
	d.SKU = " PROD-001 "
	d.ImageURL = " https://example.com/lamp.png "
	d.StockQuantity = "0"

	p, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if p.Name != "Lamp" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	if p.SKUValue() != "PROD-001" || !p.HasSKU() {
		t.Fatalf("sku = %v", p.SKU)
	}
	if p.ImageURLValue() != "https://example.com/lamp.png" || !p.HasImage() {
		t.Fatalf("image = %v", p.ImageURL)
	}
	if p.StockQuantity != 0 {
		t.Fatalf("stock = %d", p.StockQuantity)
	}
}

func TestBuild_WhitespaceOptionalIsAbsent(t *testing.T) {
	d := validDraft()
	d.SKU = "   "
	p, err := Build(d)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if p.SKU != nil {
		t.Fatalf("whitespace sku should be absent, got %q", *p.SKU)
	}
}

func TestBuild_InvalidReturnsErrorSet(t *testing.T) {
	d := validDraft()
	d.Price = "0"

	_, err := Build(d)
	var errs ErrorSet
	if !errors.As(err, &errs) {
		t.Fatalf("error %T is not an ErrorSet", err)
	}
	if errs[FieldPrice].Code != CodeInvalidNumber {
		t.Fatalf("price code = %s", errs[FieldPrice].Code)
	}
}

func TestProduct_JSONOmitsAbsentOptionals(t *testing.T) {
	p, _ := Build(validDraft())
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":"Widget","description":"A widget","price":9.99,"category":"Electronics","stockQuantity":5}`
	if string(raw) != want {
		t.Fatalf("json = %s\nwant %s", raw, want)
	}
}

func TestBuild_ValidDraftsProduceSaneNumbers(t *testing.T) {
	prices := []string{"0.01", "1", "19.5", "1e3"}
	stocks := []string{"0", "1", "42", "+7"}
	for _, pr := range prices {
		for _, st := range stocks {
			d := validDraft()
			d.Price, d.StockQuantity = pr, st
			p, err := Build(d)
			if err != nil {
				t.Fatalf("Build(price=%q stock=%q): %v", pr, st, err)
			}
			if p.Price <= 0 || p.StockQuantity < 0 {
				t.Fatalf("price=%v stock=%d out of range", p.Price, p.StockQuantity)
			}
		}
	}
}
