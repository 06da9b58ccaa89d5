package form

import (
	"context"

	"github.com/yanizio/productform/internal/product"
)

// VariantSchema labels the schema-validated form in logs and metrics.
const VariantSchema = "schema"

// SchemaForm binds the declarative schema to field state.  Fields validate on
// blur; once a submit has been attempted they also re-validate on change.
// Errors surface only for touched fields.
type SchemaForm struct {
	base
	schema *SchemaValidator
}

// NewSchemaForm returns an empty form that hands valid products to sub.
func NewSchemaForm(sub Submitter, opts Options) *SchemaForm {
	return NewSchemaFormWith(defaultSchema, sub, opts)
}

// NewSchemaFormWith is NewSchemaForm with an explicit schema.
func NewSchemaFormWith(schema *SchemaValidator, sub Submitter, opts Options) *SchemaForm {
	f := &SchemaForm{schema: schema}
	f.init(VariantSchema, sub, opts)
	return f
}

// Change stores a new raw value.
func (s *SchemaForm) Change(f product.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return
	}
	s.draft.Set(f, value)
	if s.attempted {
		fe, ok := s.schema.ValidateField(s.draft, f)
		s.applyField(f, fe, ok)
	}
}

// Blur marks f touched and re-validates it.
func (s *SchemaForm) Blur(f product.Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return
	}
	s.touched[f] = true
	fe, ok := s.schema.ValidateField(s.draft, f)
	s.applyField(f, fe, ok)
}

// Submit validates the whole record and, when it passes, hands the built
// product to the Submitter.  See lifecycle.go for the returned errors.
func (s *SchemaForm) Submit(ctx context.Context) (product.Product, error) {
	return s.submit(ctx, s.schema)
}
