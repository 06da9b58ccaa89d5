// internal/config/loader_test.go
//
// Unit-tests for LoadFrom: defaults, YAML, env overlay, and validation.
//
// Run: go test ./internal/config -v

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", "global.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("listen_addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Form.ResetDelay != 2*time.Second {
		t.Errorf("reset_delay = %s", cfg.Form.ResetDelay)
	}
	if cfg.Session.Capacity != 1024 || cfg.Log.Level != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("base_url should default to local-only mode")
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("api.timeout = %s, want 0 (transport default)", cfg.API.Timeout)
	}
	if Get() != cfg {
		t.Errorf("Get() did not return the cached config")
	}
}

func TestLoadFrom_YAMLAndEnv(t *testing.T) {
	root := writeYAML(t, `
http:
  listen_addr: "127.0.0.1:9000"
  read_timeout: 3s
api:
  base_url: "http://api.local"
  preload: true
form:
  reset_delay: 500ms
log:
  level: debug
`)
	t.Setenv("PRODUCTFORM_API__BASE_URL", "https://products.example.com")
	t.Setenv("PRODUCTFORM_SESSION__CAPACITY", "16")

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.HTTP.ListenAddr != "127.0.0.1:9000" || cfg.HTTP.ReadTimeout != 3*time.Second {
		t.Errorf("http = %+v", cfg.HTTP)
	}
	if cfg.API.BaseURL != "https://products.example.com" || !cfg.API.Preload {
		t.Errorf("api = %+v", cfg.API)
	}
	if cfg.Form.ResetDelay != 500*time.Millisecond {
		t.Errorf("reset_delay = %s", cfg.Form.ResetDelay)
	}
	if cfg.Session.Capacity != 16 {
		t.Errorf("capacity = %d", cfg.Session.Capacity)
	}
	if cfg.LogDir() != filepath.Join(root, "logs") {
		t.Errorf("LogDir = %q", cfg.LogDir())
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad level":  "log:\n  level: loud\n",
		"bad scheme": "api:\n  base_url: \"ftp://x.example\"\n",
		"bad addr":   "http:\n  listen_addr: \"nope\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(writeYAML(t, body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestEnvKey(t *testing.T) {
	if got := envKey("PRODUCTFORM_HTTP__LISTEN_ADDR"); got != "http.listen_addr" {
		t.Fatalf("envKey = %q", got)
	}
	if got := envKey("PRODUCTFORM_ROOT"); got != "" {
		t.Fatalf("ROOT should be skipped, got %q", got)
	}
}
