// internal/form/submit.go
//
// Product forms: request helpers for HTTP handlers.
//
// Context
//   Handlers want one call that parses the POST body, checks the CSRF token,
//   copies posted values into a form, and then submits or blurs.  These
//   helpers keep component code terse and treat both variants alike through
//   the Form interface.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/yanizio/productform/internal/product"
)

// Form is the surface both variants expose to the presentation layer.
type Form interface {
	Values() product.Draft
	Change(f product.Field, value string)
	Blur(f product.Field)
	Submit(ctx context.Context) (product.Product, error)
	FieldError(f product.Field) string
	VisibleErrors() map[string]string
	State() State
	Busy() bool
	SubmitError() string
}

var (
	_ Form = (*SchemaForm)(nil)
	_ Form = (*ManualForm)(nil)
)

// ErrBadToken is returned when the posted CSRF token fails verification.
var ErrBadToken = errors.New("form: security token invalid")

// HandleSubmit parses r, verifies the CSRF token, applies every posted product
// field to f, and submits.  Validation failures come back as
// *ValidationError, Submitter failures as *SubmitError.
//
// The submission is detached from the request's cancellation: a client that
// disconnects mid-post must not abort a create the API may already have
// stored.
func HandleSubmit(f Form, r *http.Request) (product.Product, error) {
	if err := parseAndVerify(r); err != nil {
		return product.Product{}, err
	}
	ApplyValues(f, r.PostForm)
	return f.Submit(context.WithoutCancel(r.Context()))
}

// HandleBlur applies the posted “value” (when present) to field and blurs it.
// It returns the message now visible for field, or "".
func HandleBlur(f Form, field product.Field, r *http.Request) (string, error) {
	if err := parseAndVerify(r); err != nil {
		return "", err
	}
	if v, ok := r.PostForm["value"]; ok && len(v) > 0 {
		f.Change(field, v[0])
	}
	f.Blur(field)
	return f.FieldError(field), nil
}

// ApplyValues copies posted product fields into f.  Absent keys are left
// untouched.
func ApplyValues(f Form, posted url.Values) {
	for _, fld := range product.Fields {
		if v, ok := posted[string(fld)]; ok && len(v) > 0 {
			f.Change(fld, v[0])
		}
	}
}

func parseAndVerify(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	if !verifyCSRF(r.PostForm.Get(CSRFFieldName)) {
		return ErrBadToken
	}
	return nil
}

func verifyCSRF(token string) bool {
	return token != "" && VerifyToken(token)
}
