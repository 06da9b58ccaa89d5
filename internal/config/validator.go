// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals and defaults the merged Koanf tree.  Any validation error
// aborts startup, so the binary never runs with malformed configuration.
//
// Built-in rules cover most keys (`hostname_port`, `url`, `oneof`).  The
// one cross-field rule, that an API base URL must use http or https, is a
// struct-level check registered here.

package config

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterStructValidation(apiScheme, API{})
	return val
}

// apiScheme rejects base URLs the HTTP client cannot dial.
func apiScheme(sl validator.StructLevel) {
	a := sl.Current().Interface().(API)
	if a.BaseURL == "" {
		return
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		sl.ReportError(a.BaseURL, "BaseURL", "base_url", "http_url", "")
	}
}

//
// public API
//

// validateStruct returns the validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}
