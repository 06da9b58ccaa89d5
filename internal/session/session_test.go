// internal/session/session_test.go
//
// Unit-tests for the cookie-backed session store.

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type counter struct{ n int }

func TestStore_CreatesAndReuses(t *testing.T) {
	s := New(8, func() *counter { return &counter{} })

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	id, c := s.Get(w, r)
	c.n++

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != id {
		t.Fatalf("cookie not set: %+v", cookies)
	}

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	id2, c2 := s.Get(w2, r2)
	if id2 != id || c2.n != 1 {
		t.Fatalf("session not reused: id=%s n=%d", id2, c2.n)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Fatalf("cookie re-issued for a known session")
	}
}

func TestStore_IssuesFreshIDForUnknownCookie(t *testing.T) {
	s := New(8, func() *counter { return &counter{} })
	chosen := "6f1c1a3e-6b1f-4a8e-9d3c-2b7e5f0a9c11"
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: chosen})

	w := httptest.NewRecorder()
	id, _ := s.Get(w, r)
	if id == chosen {
		t.Fatalf("client-chosen session id adopted")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != id {
		t.Fatalf("fresh cookie not issued: %+v", cookies)
	}
	if _, ok := s.Lookup(r); ok {
		t.Fatalf("unknown id became a live session")
	}
}

func TestStore_RejectsForeignCookie(t *testing.T) {
	s := New(8, func() *counter { return &counter{} })
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc"})

	if _, ok := s.Lookup(r); ok {
		t.Fatalf("Lookup accepted a non-UUID cookie")
	}
	w := httptest.NewRecorder()
	id, _ := s.Get(w, r)
	if id == "../../etc" {
		t.Fatalf("non-UUID cookie reused as session id")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}
