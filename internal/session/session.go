// internal/session/session.go
//
// Per-visitor session store.
//
// Context
//   Each browser gets its own pair of product forms, so form state must
//   survive between requests.  A random UUID in the “productform_session”
//   cookie names the visitor; the state lives in an in-memory LRU sized by
//   session.capacity.  Evicted visitors simply start with a fresh value on
//   their next request.
//
//   The cookie carries only an opaque identifier, never form data.
//
// Style
//   Two-space sentence spacing, Oxford comma, terse inline notes.
//
//------------------------------------------------------------------------------

package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yanizio/productform/internal/cache"
)

const (
	// CookieName is the session cookie.
	CookieName = "productform_session"
	cookieTTL  = 14 * 24 * time.Hour
)

// Store maps session IDs to values of type T.
type Store[T any] struct {
	lru   *cache.LRU[string, T]
	newFn func() T
}

// New returns a store holding at most capacity sessions.  newFn builds the
// value for a first visit.
func New[T any](capacity int, newFn func() T) *Store[T] {
	lru := cache.New[string, T](capacity)
	lru.OnEvict = func(id string, _ T) {
		zap.S().Debugw("session evicted", "session", id)
	}
	return &Store[T]{lru: lru, newFn: newFn}
}

// Get returns the caller's value, creating the session and setting the
// cookie when the request carries none (or an unknown one).  New sessions
// always get a server-issued ID; a client-supplied ID is never adopted.
func (s *Store[T]) Get(w http.ResponseWriter, r *http.Request) (string, T) {
	if id, ok := ID(r); ok {
		if val, found := s.lru.Get(id); found {
			return id, val
		}
	}

	id := uuid.NewString()
	val, _ := s.lru.GetOrAdd(id, s.newFn)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(cookieTTL),
	})
	return id, val
}

// Lookup returns the value for an existing session without creating one.
func (s *Store[T]) Lookup(r *http.Request) (T, bool) {
	id, ok := ID(r)
	if !ok {
		var zero T
		return zero, false
	}
	return s.lru.Get(id)
}

// Len reports the number of live sessions.
func (s *Store[T]) Len() int { return s.lru.Len() }

// ID returns the session ID carried by r.  ok == false when the cookie is
// missing or not a UUID.
func ID(r *http.Request) (id string, ok bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return "", false
	}
	return c.Value, true
}
