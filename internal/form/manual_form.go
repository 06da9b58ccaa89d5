package form

import (
	"context"

	"github.com/yanizio/productform/internal/product"
)

// VariantManual labels the hand-rolled form in logs and metrics.
const VariantManual = "manual"

// ManualForm keeps raw values, a touched set, and an error set that it
// updates explicitly by calling the product rule table.  No schema layer is
// involved.
type ManualForm struct {
	base
	rules product.RuleTable
}

// NewManualForm returns an empty form that hands valid products to sub.
func NewManualForm(sub Submitter, opts Options) *ManualForm {
	f := &ManualForm{rules: product.Rules}
	f.init(VariantManual, sub, opts)
	return f
}

// Change stores a new raw value and clears that field's error, if any.
func (m *ManualForm) Change(f product.Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editable() {
		return
	}
	m.draft.Set(f, value)
	delete(m.errs, f)
}

// SelectCategory changes the category and marks it touched, as a select
// control commits on choice rather than on blur.
func (m *ManualForm) SelectCategory(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editable() {
		return
	}
	m.draft.Category = value
	delete(m.errs, product.FieldCategory)
	m.touched[product.FieldCategory] = true
}

// Blur marks f touched, re-runs validation, and applies only f's result.
func (m *ManualForm) Blur(f product.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.editable() {
		return
	}
	m.touched[f] = true
	fe, ok := m.rules.ValidateField(m.draft, f)
	m.applyField(f, fe, ok)
}

// Submit validates every field, marks all touched, and submits when clean.
func (m *ManualForm) Submit(ctx context.Context) (product.Product, error) {
	return m.submit(ctx, m.rules)
}
