// internal/middleware/middleware_test.go
//
// Unit-tests for ForceHTTPS and Security.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestForceHTTPS(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		host    string
		proto   string
		want    int
	}{
		{"disabled", false, "shop.example.com", "", http.StatusOK},
		{"redirects", true, "shop.example.com", "", http.StatusPermanentRedirect},
		{"localhost", true, "localhost:8080", "", http.StatusOK},
		{"ipv6 loopback", true, "[::1]:8080", "", http.StatusOK},
		{"proxy https", true, "shop.example.com", "https", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/x?tab=manual", nil)
			r.Host = tc.host
			if tc.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			w := httptest.NewRecorder()
			ForceHTTPS(tc.enabled)(ok).ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
			if tc.want == http.StatusPermanentRedirect {
				if loc := w.Header().Get("Location"); loc != "https://shop.example.com/x?tab=manual" {
					t.Fatalf("Location = %q", loc)
				}
			}
		})
	}
}

func TestSecurity(t *testing.T) {
	custom := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	Security(custom).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Content-Security-Policy"); got != "default-src 'none'" {
		t.Fatalf("handler CSP overridden: %q", got)
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("X-Frame-Options missing")
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS sent over plain HTTP")
	}
}
