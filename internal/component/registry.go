// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name>.  cmd/web builds it
// with its dependencies and calls component.Register(); MountAll then lets
// every component add its routes to the root router.  Components that need
// work before serving implement Initializer.

package component

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Initializer is optional.  If a Component implements it, MountAll calls
// Init once before mounting its routes.
type Initializer interface {
	Init() error
}

// Component contract.
//
// Routes(r) should add BOTH page and API endpoints, e.g:
//
//	r.Get("/", page)
//	r.Route("/api", func(api chi.Router) { ... })
//
// Components share the root router, so paths must not collide.
type Component interface {
	Name() string
	Routes(r chi.Router)
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register adds c, replacing any component with the same name.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component sorted by name.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// MountAll initializes every registered component and adds its routes to r.
func MountAll(r chi.Router) error {
	for _, c := range All() {
		if in, ok := c.(Initializer); ok {
			if err := in.Init(); err != nil {
				return err
			}
		}
		c.Routes(r)
	}
	return nil
}
