// components/product/product.go
//
// Product component: the page with both forms and the created-product list.
//
// Routes
//   GET  /                              page (?tab=schema|manual)
//   POST /forms/{variant}               full form post; 303 to the page on
//                                       success, re-render otherwise
//   POST /forms/{variant}/blur/{field}  one-field blur, JSON {field,error}
//   GET  /api/products                  display list as JSON, newest first
//
// Each visitor owns one Workspace (a SchemaForm and a ManualForm) held in
// the session store.
package product

import (
	"embed"
	"errors"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/yanizio/productform/internal/catalog"
	"github.com/yanizio/productform/internal/component"
	"github.com/yanizio/productform/internal/form"
	"github.com/yanizio/productform/internal/logger"
	"github.com/yanizio/productform/internal/middleware"
	domain "github.com/yanizio/productform/internal/product"
	"github.com/yanizio/productform/internal/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed templates/page.html
var pageFS embed.FS

var pageTpl = template.Must(template.ParseFS(pageFS, "templates/page.html"))

// compile-time assertions
var _ component.Component = (*Comp)(nil)

// Workspace is one visitor's pair of forms.
type Workspace struct {
	Schema *form.SchemaForm
	Manual *form.ManualForm
}

// Form returns the form for variant, or nil.
func (ws *Workspace) Form(variant string) form.Form {
	switch variant {
	case form.VariantSchema:
		return ws.Schema
	case form.VariantManual:
		return ws.Manual
	}
	return nil
}

// NewWorkspace returns a factory for session values.
func NewWorkspace(sub form.Submitter, opts form.Options) func() *Workspace {
	return func() *Workspace {
		return &Workspace{
			Schema: form.NewSchemaForm(sub, opts),
			Manual: form.NewManualForm(sub, opts),
		}
	}
}

// Comp implements component.Component.
type Comp struct {
	sessions   *session.Store[*Workspace]
	list       *catalog.List
	resetDelay time.Duration
}

// New builds the component.  resetDelay drives the page's reload after a
// success; it should match the forms' own ResetDelay.
func New(sessions *session.Store[*Workspace], list *catalog.List, resetDelay time.Duration) *Comp {
	if resetDelay <= 0 {
		resetDelay = form.DefaultResetDelay
	}
	return &Comp{sessions: sessions, list: list, resetDelay: resetDelay}
}

func (c *Comp) Name() string { return "product" }

func (c *Comp) Routes(r chi.Router) {
	r.Get("/", c.page)
	r.Post("/forms/{variant}", c.submit)
	r.Post("/forms/{variant}/blur/{field}", c.blur)
	r.Get("/api/products", c.products)
}

//------------------------------------------------------------------------------
// Handlers
//------------------------------------------------------------------------------

func (c *Comp) page(w http.ResponseWriter, r *http.Request) {
	_, ws := c.sessions.Get(w, r)
	c.render(w, r, ws, tabOf(r.URL.Query().Get("tab")), http.StatusOK)
}

func (c *Comp) submit(w http.ResponseWriter, r *http.Request) {
	variant := chi.URLParam(r, "variant")
	_, ws := c.sessions.Get(w, r)
	f := ws.Form(variant)
	if f == nil {
		http.NotFound(w, r)
		return
	}

	_, err := form.HandleSubmit(f, r)
	var se *form.SubmitError
	switch {
	case err == nil:
		http.Redirect(w, r, "/?tab="+variant, http.StatusSeeOther)
		return
	case errors.Is(err, form.ErrBadToken):
		http.Error(w, "invalid or expired form token, reload the page", http.StatusForbidden)
		return
	case form.IsValidationError(err):
		c.render(w, r, ws, variant, http.StatusUnprocessableEntity)
	case errors.As(err, &se):
		c.render(w, r, ws, variant, http.StatusBadGateway)
	case errors.Is(err, form.ErrSubmitInFlight), errors.Is(err, form.ErrSubmitted):
		c.render(w, r, ws, variant, http.StatusConflict)
	default:
		logger.FromContext(r.Context()).Warnw("form post rejected", "form", variant, "err", err)
		http.Error(w, "bad request", http.StatusBadRequest)
	}
}

type blurResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func (c *Comp) blur(w http.ResponseWriter, r *http.Request) {
	ws, ok := c.sessions.Lookup(r)
	if !ok {
		http.Error(w, "no session", http.StatusBadRequest)
		return
	}
	f := ws.Form(chi.URLParam(r, "variant"))
	if f == nil {
		http.NotFound(w, r)
		return
	}
	field, err := domain.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := form.HandleBlur(f, field, r)
	if errors.Is(err, form.ErrBadToken) {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	writeJSON(w, blurResponse{Field: string(field), Error: msg})
}

func (c *Comp) products(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, c.list.All())
}

//------------------------------------------------------------------------------
// Rendering
//------------------------------------------------------------------------------

type formView struct {
	Variant     string
	TabLabel    string
	Title       string
	Description string
	SubmitLabel string
	Active      bool
	Submitted   bool
	Busy        bool
	SubmitError string
	Fields      template.HTML
}

type pageView struct {
	Tab           string
	Nonce         string
	Forms         []formView
	Products      []domain.Product
	ReloadAfterMs int64
	ReloadURL     string
}

var variantText = map[string]struct{ tab, desc string }{
	form.VariantSchema: {"With Schema", "Using declarative schema validation"},
	form.VariantManual: {"Manual Validation", "Using explicit per-field rule calls"},
}

func (c *Comp) render(w http.ResponseWriter, r *http.Request, ws *Workspace, tab string, status int) {
	fd, ok := form.GetFormDef(form.ProductFormID)
	if !ok {
		http.Error(w, "form definition missing", http.StatusInternalServerError)
		return
	}

	view := pageView{
		Tab:       tab,
		Nonce:     uuid.NewString(),
		Products:  c.list.All(),
		ReloadURL: "/?tab=" + tab,
	}

	for _, variant := range []string{form.VariantSchema, form.VariantManual} {
		f := ws.Form(variant)
		fv := formView{
			Variant:     variant,
			TabLabel:    variantText[variant].tab,
			Title:       fd.Title,
			Description: variantText[variant].desc,
			SubmitLabel: fd.Submit,
			Active:      variant == tab,
			Submitted:   f.State() == form.Submitted,
			Busy:        f.Busy(),
			SubmitError: f.SubmitError(),
		}
		if fv.Active {
			html, err := form.RenderForm(form.ProductFormID, form.RenderOptions{
				Values:   f.Values().Values(),
				Errors:   f.VisibleErrors(),
				IDSuffix: variant,
				CSRF:     true,
				Disabled: fv.Busy,
			})
			if err != nil {
				logger.FromContext(r.Context()).Errorw("render form failed", "form", variant, "err", err)
				http.Error(w, "render error", http.StatusInternalServerError)
				return
			}
			fv.Fields = html
			if fv.Submitted {
				view.ReloadAfterMs = int64(math.Ceil(float64(c.resetDelay)/float64(time.Millisecond))) + 100
			}
		}
		view.Forms = append(view.Forms, fv)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Security-Policy", middleware.DefaultCSP+
		"; script-src 'nonce-"+view.Nonce+"'; style-src 'nonce-"+view.Nonce+"'")
	w.WriteHeader(status)
	if err := pageTpl.Execute(w, view); err != nil {
		logger.FromContext(r.Context()).Errorw("page render failed", "err", err)
	}
}

func tabOf(q string) string {
	if q == form.VariantManual {
		return form.VariantManual
	}
	return form.VariantSchema
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
