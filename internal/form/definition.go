// internal/form/definition.go
//
// Product forms: YAML definition loader.
//
// Context
//   The product form is declared in YAML.  The definition carries what the
//   presentation layer needs (labels, input types, placeholders, select
//   options, and HTML hint attributes) while the rules themselves stay in
//   internal/product.  The built-in definition is embedded from forms/ and
//   registered at init.  Operators may override it by pointing
//   RegisterForms at a directory holding their own “forms/*.yaml”.
//
// Workflow
//   •  Structs mirror the YAML schema: FormDef → FieldDef.
//   •  ParseFormDef decodes one document and validates structural rules.
//   •  LoadFormDef reads a file and hands it to ParseFormDef.
//   •  RegisterForms walks base directories, later directories winning.
//   •  GetFormDef offers read-only access to a parsed form by ID.
//
// Style
//   Comments follow full sentences, two spaces after periods, and Oxford
//   commas.  Helper comments use short noun phrases.
//
//------------------------------------------------------------------------------

package form

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yanizio/productform/internal/product"
)

// ProductFormID is the ID of the built-in product creation form.
const ProductFormID = "product/create"

// optionsCategories resolves select options from product.Categories.
const optionsCategories = "product.categories"

//go:embed forms/*.yaml
var builtinForms embed.FS

// -----------------------------------------------------------------------------
// Data structures
// -----------------------------------------------------------------------------

// FormDef represents one form definition loaded from YAML.
type FormDef struct {
	ID     string     `yaml:"id"`     // Namespaced identifier, e.g. “product/create”.
	Title  string     `yaml:"title"`  // Display heading.
	Submit string     `yaml:"submit"` // Submit button text.
	Fields []FieldDef `yaml:"fields"` // Inputs in display order.
}

// FieldDef describes a single input control on the form.
type FieldDef struct {
	Name        string   `yaml:"name"`         // Product field key.  Required.
	Label       string   `yaml:"label"`        // Human-readable label.  Required.
	Type        string   `yaml:"type"`         // text, textarea, number, url, select.
	Placeholder string   `yaml:"placeholder"`  // Optional placeholder text.
	Required    bool     `yaml:"required"`     // Marks the label with “*”.
	MaxLength   int      `yaml:"maxlength"`    // ≥ 0, 0 means unset.
	Min         string   `yaml:"min"`          // number inputs only.
	Step        string   `yaml:"step"`         // number inputs only.
	Options     []string `yaml:"options"`      // Literal select options.
	OptionsFrom string   `yaml:"options_from"` // Named option source.
}

// Field returns the product field this input edits.  The loader guarantees
// the name is valid.
func (f FieldDef) Field() product.Field { return product.Field(f.Name) }

// SelectOptions returns the literal options or the resolved named source.
func (f FieldDef) SelectOptions() []string {
	if f.OptionsFrom == optionsCategories {
		return product.CategoryNames()
	}
	return f.Options
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*FormDef)
)

// GetFormDef returns a parsed FormDef by ID.  The boolean is false when the ID
// is unknown.
func GetFormDef(id string) (*FormDef, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fd, ok := registry[id]
	return fd, ok
}

func register(fd *FormDef) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[fd.ID] = fd
}

func init() {
	if err := registerBuiltin(); err != nil {
		panic(err) // embedded definitions are part of the binary
	}
}

func registerBuiltin() error {
	return fs.WalkDir(builtinForms, "forms", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		raw, err := builtinForms.ReadFile(path)
		if err != nil {
			return err
		}
		fd, err := ParseFormDef(raw, "builtin:"+path)
		if err != nil {
			return err
		}
		register(fd)
		return nil
	})
}

// -----------------------------------------------------------------------------
// Loader API
// -----------------------------------------------------------------------------

// ParseFormDef decodes raw YAML and validates it.  source names the document
// in error messages.  It NEVER mutates the registry.
func ParseFormDef(raw []byte, source string) (*FormDef, error) {
	var fd FormDef
	if err := yaml.Unmarshal(raw, &fd); err != nil {
		return nil, fmt.Errorf("parse YAML %s: %w", source, err)
	}
	if err := validateFormDef(&fd, source); err != nil {
		return nil, err
	}
	return &fd, nil
}

// LoadFormDef parses one YAML file.
func LoadFormDef(path string) (*FormDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", path, err)
	}
	return ParseFormDef(raw, path)
}

// RegisterForms loads every “*.yaml” under “<base>/forms/” and registers it,
// replacing built-in definitions with the same ID.  Later directories win.
// Missing directories are skipped.
func RegisterForms(baseDirs []string) error {
	if len(baseDirs) == 0 {
		return errors.New("RegisterForms: no base directories provided")
	}

	for _, base := range baseDirs {
		root := filepath.Join(base, "forms")
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
				return nil // skip non-YAML
			}
			fd, err := LoadFormDef(path)
			if err != nil {
				return err // fail fast so issues surface loudly.
			}
			register(fd)
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Validation helpers
// -----------------------------------------------------------------------------

// validateFormDef enforces structural rules that cannot be expressed via YAML
// tags alone.
func validateFormDef(fd *FormDef, source string) error {
	if fd.ID == "" {
		return fmt.Errorf("form definition %s: missing required 'id'", source)
	}
	if len(fd.Fields) == 0 {
		return fmt.Errorf("form definition %s: must have 'fields'", source)
	}

	seen := make(map[string]struct{}, len(fd.Fields))
	for i := range fd.Fields {
		if err := validateField(&fd.Fields[i], source); err != nil {
			return err
		}
		if _, dup := seen[fd.Fields[i].Name]; dup {
			return fmt.Errorf("form %s: duplicate field name '%s'", source, fd.Fields[i].Name)
		}
		seen[fd.Fields[i].Name] = struct{}{}
	}
	if fd.Submit == "" {
		fd.Submit = "Submit"
	}
	return nil
}

// validateField confirms that essential attributes are present and sane.
func validateField(f *FieldDef, source string) error {
	if _, err := product.ParseField(f.Name); err != nil {
		return fmt.Errorf("form %s: %w", source, err)
	}
	if f.Label == "" {
		return fmt.Errorf("form %s: field '%s' missing 'label'", source, f.Name)
	}
	switch f.Type {
	case "text", "textarea", "number", "url":
	case "select":
		if len(f.Options) == 0 && f.OptionsFrom != optionsCategories {
			return fmt.Errorf("form %s: select '%s' needs 'options' or 'options_from'", source, f.Name)
		}
	case "":
		return fmt.Errorf("form %s: field '%s' missing 'type'", source, f.Name)
	default:
		return fmt.Errorf("form %s: field '%s' has unsupported type %q", source, f.Name, f.Type)
	}
	if f.MaxLength < 0 {
		return fmt.Errorf("form %s: field '%s' maxlength cannot be negative", source, f.Name)
	}
	return nil
}
