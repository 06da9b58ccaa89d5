// internal/component/registry_test.go
//
// Unit-tests for the component registry.

package component

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

type stub struct {
	name    string
	initErr error
	inited  bool
}

func (s *stub) Name() string { return s.name }
func (s *stub) Init() error  { s.inited = true; return s.initErr }
func (s *stub) Routes(r chi.Router) {
	r.Get("/"+s.name, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(s.name))
	})
}

func reset() {
	mu.Lock()
	registry = map[string]Component{}
	mu.Unlock()
}

func TestMountAll(t *testing.T) {
	reset()
	a, b := &stub{name: "b"}, &stub{name: "a"}
	Register(a)
	Register(b)

	if all := All(); len(all) != 2 || all[0].Name() != "a" {
		t.Fatalf("All() not sorted: %v", all)
	}

	r := chi.NewRouter()
	if err := MountAll(r); err != nil {
		t.Fatalf("MountAll: %v", err)
	}
	if !a.inited || !b.inited {
		t.Fatalf("Init not called")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/b", nil))
	if w.Body.String() != "b" {
		t.Fatalf("GET /b = %q", w.Body.String())
	}
}

func TestMountAll_InitError(t *testing.T) {
	reset()
	Register(&stub{name: "x", initErr: errors.New("boom")})
	if err := MountAll(chi.NewRouter()); err == nil {
		t.Fatalf("expected init error")
	}
}
