// internal/form/lifecycle.go
//
// Product forms: state and submission lifecycle shared by both variants.
//
// Context
//   The schema form and the manual form differ only in when they validate.
//   Everything else (the draft, the touched set, the error set, and the
//   submit cycle) lives in base:
//
//      Editing ─submit, valid→ Submitting ─ok→ Submitted ─delay→ Editing(empty)
//                              Submitting ─fail→ Editing(message, draft kept)
//      Editing ─submit, invalid→ Editing(all errors shown)
//
//   Only one submission may be in flight per form.  A second Submit while
//   Submitting returns ErrSubmitInFlight and never reaches the Submitter.
//
//   base is guarded by a mutex because the reset timer fires on its own
//   goroutine and HTTP handlers may touch one session concurrently.  The
//   mutex is never held while the Submitter runs.
//
//------------------------------------------------------------------------------

package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yanizio/productform/internal/metrics"
	"github.com/yanizio/productform/internal/product"
)

// DefaultResetDelay is how long a form stays Submitted before it clears.
const DefaultResetDelay = 2 * time.Second

// State is the submission state of a form.
type State int

const (
	Editing State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return "unknown"
}

// -----------------------------------------------------------------------------
// Submitter
// -----------------------------------------------------------------------------

// Submitter receives every product that passes validation.  A non-nil error
// keeps the draft and is shown to the user as the error's message.
type Submitter interface {
	Submit(ctx context.Context, p product.Product) error
}

// SubmitFunc adapts a plain function to Submitter.
type SubmitFunc func(ctx context.Context, p product.Product) error

// Submit implements Submitter.
func (f SubmitFunc) Submit(ctx context.Context, p product.Product) error { return f(ctx, p) }

// Options tune a form instance.
type Options struct {
	// ResetDelay is the Submitted window.  Zero means DefaultResetDelay.
	ResetDelay time.Duration
}

// -----------------------------------------------------------------------------
// Errors
// -----------------------------------------------------------------------------

var (
	// ErrSubmitInFlight is returned by Submit while a submission is running.
	ErrSubmitInFlight = errors.New("form: submission already in flight")
	// ErrSubmitted is returned by Submit during the post-success window.
	ErrSubmitted = errors.New("form: submitted, waiting for reset")
)

// ValidationError wraps the ErrorSet that blocked a submission.
//
// It allows callers to distinguish user input errors from system failures via
// errors.As / IsValidationError.
type ValidationError struct{ Fields product.ErrorSet }

func (ve *ValidationError) Error() string { return "form validation failed" }

// IsValidationError reports whether err came from failed validation.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SubmitError is returned when the Submitter fails.  Message is user-facing.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }
func (e *SubmitError) Unwrap() error { return e.Err }

// -----------------------------------------------------------------------------
// base
// -----------------------------------------------------------------------------

type base struct {
	mu        sync.Mutex
	variant   string
	draft     product.Draft
	touched   map[product.Field]bool
	errs      product.ErrorSet
	state     State
	submitErr string
	attempted bool   // at least one Submit ran validation
	gen       uint64 // bumps on every success so stale timers are ignored

	delay     time.Duration
	submitter Submitter
}

func (b *base) init(variant string, sub Submitter, opts Options) {
	if sub == nil {
		sub = SubmitFunc(func(context.Context, product.Product) error { return nil })
	}
	b.delay = opts.ResetDelay
	if b.delay <= 0 {
		b.delay = DefaultResetDelay
	}
	b.variant = variant
	b.touched = map[product.Field]bool{}
	b.errs = product.ErrorSet{}
	b.submitter = sub
}

// Values returns a copy of the current draft.
func (b *base) Values() product.Draft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// Value returns the raw value of one field.
func (b *base) Value(f product.Field) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft.Get(f)
}

// Touched reports whether the user has interacted with f.
func (b *base) Touched(f product.Field) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.touched[f]
}

// FieldError returns the message for f, but only once f has been touched.
func (b *base) FieldError(f product.Field) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.touched[f] {
		return ""
	}
	return b.errs.Message(f)
}

// VisibleErrors returns field → message for touched fields with an error.
func (b *base) VisibleErrors() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.errs))
	for f, fe := range b.errs {
		if b.touched[f] {
			out[string(f)] = fe.Message
		}
	}
	return out
}

// Errors returns a copy of the full error set, touched or not.
func (b *base) Errors() product.ErrorSet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errs.Clone()
}

// State returns the submission state.
func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Busy reports whether the submit control should be disabled.
func (b *base) Busy() bool { return b.State() == Submitting }

// SubmitError returns the last submission failure message, or "".
func (b *base) SubmitError() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitErr
}

// editable reports whether value changes are accepted.  Caller holds mu.
// During the Submitted window the form is not on screen, so input is dropped.
func (b *base) editable() bool { return b.state != Submitted }

func (b *base) touchAll() {
	for _, f := range product.Fields {
		b.touched[f] = true
	}
}

// applyField stores or clears the result of a single-field check.  Caller
// holds mu.
func (b *base) applyField(f product.Field, fe product.FieldError, ok bool) {
	if ok {
		delete(b.errs, f)
		return
	}
	b.errs[f] = fe
}

// submit runs the shared pipeline with the variant's validation strategy.
func (b *base) submit(ctx context.Context, v product.Validator) (product.Product, error) {
	b.mu.Lock()
	switch b.state {
	case Submitting:
		b.mu.Unlock()
		metrics.FormSubmissions.WithLabelValues(b.variant, "rejected").Inc()
		return product.Product{}, ErrSubmitInFlight
	case Submitted:
		b.mu.Unlock()
		metrics.FormSubmissions.WithLabelValues(b.variant, "rejected").Inc()
		return product.Product{}, ErrSubmitted
	}

	b.attempted = true
	b.submitErr = ""
	b.errs = v.Validate(b.draft)
	b.touchAll()
	if !b.errs.Empty() {
		errs := b.errs.Clone()
		b.mu.Unlock()
		metrics.FormSubmissions.WithLabelValues(b.variant, "invalid").Inc()
		return product.Product{}, &ValidationError{Fields: errs}
	}

	p, err := product.BuildWith(v, b.draft)
	if err != nil {
		b.mu.Unlock()
		return product.Product{}, err
	}
	b.state = Submitting
	b.mu.Unlock()

	serr := b.submitter.Submit(ctx, p)

	b.mu.Lock()
	defer b.mu.Unlock()

	if serr != nil {
		b.state = Editing
		b.submitErr = serr.Error()
		metrics.FormSubmissions.WithLabelValues(b.variant, "failed").Inc()
		zap.S().Warnw("product submission failed",
			"form", b.variant, "error", serr.Error())
		return product.Product{}, &SubmitError{Message: serr.Error(), Err: serr}
	}

	b.state = Submitted
	b.gen++
	gen := b.gen
	time.AfterFunc(b.delay, func() { b.resetIf(gen) })

	metrics.FormSubmissions.WithLabelValues(b.variant, "created").Inc()
	zap.S().Infow("product submitted",
		"form", b.variant, "name", p.Name, "category", p.Category)
	return p, nil
}

// resetIf clears the form when gen still names the current success.
func (b *base) resetIf(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen || b.state != Submitted {
		return
	}
	b.draft = product.Draft{}
	b.errs = product.ErrorSet{}
	b.touched = map[product.Field]bool{}
	b.submitErr = ""
	b.attempted = false
	b.state = Editing
}
