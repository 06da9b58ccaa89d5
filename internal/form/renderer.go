// internal/form/renderer.go
//
// Product forms: HTML renderer.
//
// Context
//   Given a parsed FormDef (from definition.go) the renderer writes the field
//   markup for one form instance.  It fills current values, marks fields
//   with a visible error, writes the error message under the input, and
//   optionally injects a CSRF hidden input.
//
// Workflow
//   •  RenderForm looks up the FormDef by ID and writes each field via
//      writeField in definition order.
//   •  Required, maxlength, min, step, and placeholder attributes are
//      attached where relevant.  Select options come from the definition or
//      its named option source, led by an empty placeholder option.
//   •  The caller receives template.HTML so the surrounding template does not
//      double-escape the markup.
//
// Style
//   Output HTML is plain.  Each input gets id="fld-{suffix}-{name}" and is
//   wrapped in <div class="form-field">.  An input with a visible error
//   carries class="input-error".
//
//------------------------------------------------------------------------------

package form

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strconv"
)

// RenderOptions bundles optional parameters influencing HTML output.
type RenderOptions struct {
	// Values are the current raw values keyed by field name.
	Values map[string]string
	// Errors are the visible messages keyed by field name.
	Errors map[string]string
	// IDSuffix keeps element IDs unique when two forms share a page.
	IDSuffix string
	// CSRF embeds a fresh token as a hidden input.
	CSRF bool
	// Disabled marks every control disabled (used while submitting).
	Disabled bool
}

// RenderForm returns the field markup for the specified form ID.
func RenderForm(formID string, opts RenderOptions) (template.HTML, error) {
	fd, ok := GetFormDef(formID)
	if !ok {
		return "", fmt.Errorf("RenderForm: unknown form %q", formID)
	}

	var buf bytes.Buffer
	buf.WriteString(`<div class="product-form">` + "\n")

	for i := range fd.Fields {
		if err := writeField(&buf, &fd.Fields[i], opts); err != nil {
			return "", err
		}
	}

	if opts.CSRF {
		tok, err := GenerateToken()
		if err != nil {
			return "", fmt.Errorf("RenderForm: csrf token: %w", err)
		}
		buf.WriteString(`<input type="hidden" name="` + CSRFFieldName + `" value="` + tok + `">` + "\n")
	}

	buf.WriteString(`</div>`)
	return template.HTML(buf.String()), nil
}

// writeField emits HTML for an individual field into buf.
func writeField(buf *bytes.Buffer, f *FieldDef, opts RenderOptions) error {
	val := opts.Values[f.Name]
	msg := opts.Errors[f.Name]

	id := "fld-" + f.Name
	if opts.IDSuffix != "" {
		id = "fld-" + opts.IDSuffix + "-" + f.Name
	}
	id = html.EscapeString(id)

	buf.WriteString(`<div class="form-field">` + "\n")

	label := html.EscapeString(f.Label)
	if f.Required {
		label += " *"
	}
	buf.WriteString(`<label for="` + id + `">` + label + `</label>` + "\n")

	attrs := ` id="` + id + `" name="` + html.EscapeString(f.Name) + `"`
	if msg != "" {
		attrs += ` class="input-error" aria-invalid="true"`
	}
	if opts.Disabled {
		attrs += ` disabled`
	}

	switch f.Type {
	case "text", "number", "url":
		buf.WriteString(`<input` + attrs + ` type="` + f.Type + `"`)
		if f.Placeholder != "" {
			buf.WriteString(` placeholder="` + html.EscapeString(f.Placeholder) + `"`)
		}
		if f.MaxLength > 0 {
			buf.WriteString(` maxlength="` + strconv.Itoa(f.MaxLength) + `"`)
		}
		if f.Min != "" {
			buf.WriteString(` min="` + html.EscapeString(f.Min) + `"`)
		}
		if f.Step != "" {
			buf.WriteString(` step="` + html.EscapeString(f.Step) + `"`)
		}
		if val != "" {
			buf.WriteString(` value="` + html.EscapeString(val) + `"`)
		}
		buf.WriteString(`>` + "\n")

	case "textarea":
		buf.WriteString(`<textarea` + attrs + ` rows="3"`)
		if f.MaxLength > 0 {
			buf.WriteString(` maxlength="` + strconv.Itoa(f.MaxLength) + `"`)
		}
		if f.Placeholder != "" {
			buf.WriteString(` placeholder="` + html.EscapeString(f.Placeholder) + `"`)
		}
		buf.WriteString(`>` + html.EscapeString(val) + `</textarea>` + "\n")

	case "select":
		buf.WriteString(`<select` + attrs + `>` + "\n")
		buf.WriteString(`<option value="">` + html.EscapeString(f.Placeholder) + `</option>` + "\n")
		for _, opt := range f.SelectOptions() {
			sel := ""
			if val == opt {
				sel = ` selected`
			}
			o := html.EscapeString(opt)
			buf.WriteString(`<option value="` + o + `"` + sel + `>` + o + `</option>` + "\n")
		}
		buf.WriteString(`</select>` + "\n")

	default:
		return fmt.Errorf("writeField: unsupported field type %q in form field %s", f.Type, f.Name)
	}

	buf.WriteString(`<span class="error" aria-live="polite">` + html.EscapeString(msg) + `</span>` + "\n")
	buf.WriteString(`</div>` + "\n")
	return nil
}
