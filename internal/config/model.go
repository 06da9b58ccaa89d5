// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                                – dotenv values,
//   • `conf/global.yaml`                             – primary static file,
//   • `PRODUCTFORM_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal and defaulting; the app
// fails fast if a value is malformed.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • Durations are written as Go duration strings ("2s", "500ms").
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

import (
	"path/filepath"
	"time"
)

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gte=0"`
	// CSRFKey is a base64url (unpadded) key of ≥ 32 bytes.  Empty means an
	// ephemeral per-process key.
	CSRFKey string `koanf:"csrf_key" validate:"omitempty,base64rawurl"`
}

//
// API section
//

// API points the product client at a remote service.
type API struct {
	// BaseURL of the product API.  Empty runs the forms in local-only mode:
	// products are added to the in-memory list without a network call.
	BaseURL string        `koanf:"base_url" validate:"omitempty,url"`
	Preload bool          `koanf:"preload"`
	// Timeout bounds each API call.  0 leaves the transport default.
	Timeout time.Duration `koanf:"timeout"  validate:"gte=0"`
}

//
// Form section
//

// Form tunes the form lifecycle.
type Form struct {
	ResetDelay time.Duration `koanf:"reset_delay" validate:"gte=0"`
}

//
// Log section
//

// Log configures the zap logger.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Dir   string `koanf:"dir"`
}

//
// Session section
//

// Session sizes the in-memory session store.
type Session struct {
	Capacity int `koanf:"capacity" validate:"gte=1"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime and never set in YAML or env.
type Paths struct {
	Root string // PRODUCTFORM_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	API     API     `koanf:"api"`
	Form    Form    `koanf:"form"`
	Log     Log     `koanf:"log"`
	Session Session `koanf:"session"`
	Paths   Paths   `koanf:"-"`
}

// LogDir returns Log.Dir resolved against the root.
func (c *Config) LogDir() string {
	if filepath.IsAbs(c.Log.Dir) {
		return c.Log.Dir
	}
	return filepath.Join(c.Paths.Root, c.Log.Dir)
}

// applyDefaults fills zero values that YAML and env left unset.
func applyDefaults(c *Config) {
	if c.HTTP.ListenAddr == "" {
		c.HTTP.ListenAddr = ":8080"
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.Form.ResetDelay == 0 {
		c.Form.ResetDelay = 2 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Session.Capacity == 0 {
		c.Session.Capacity = 1024
	}
}
