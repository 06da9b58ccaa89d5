//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight types and helpers that collect per-request metadata
//  (request ID, user-agent fingerprint, client IP, language, URL, and
//  timestamp).  These structs are inert and safe to log.
//
//  Dependencies
//  • internal/ua            (uasurfer wrapper)
//  • github.com/google/uuid (request IDs)
//

package requestinfo

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/yanizio/productform/internal/ua"
)

//
//  -----------------------------
//  Struct definitions
//  -----------------------------
//

// RequestInfo is attached to every request context by Enrich.
type RequestInfo struct {
	ID          string // random UUID, echoed as X-Request-ID
	UA          ua.Info
	IP          net.IP
	PrimaryLang string   // first tag from Accept-Language ("en", "es", ...)
	URL         *url.URL // pointer copy, safe to dereference read-only
	Timestamp   time.Time
}

//
//  -----------------------------
//  Public helper: FromContext
//  -----------------------------
//

type ctxKey struct{}

// FromContext returns the pointer previously stored by Enrich.
// It returns nil if the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// Device returns the device class for ctx, or "Unknown".
func Device(ctx context.Context) string {
	if ri := FromContext(ctx); ri != nil {
		return ri.UA.Device
	}
	return "Unknown"
}

//
//  -----------------------------
//  Internal helpers
//  -----------------------------
//

// primaryLang extracts the first language subtag before any ";q=" rule.
func primaryLang(al string) string {
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	if i := strings.Index(tag, ";"); i != -1 {
		tag = tag[:i]
	}
	return strings.ToLower(tag)
}
