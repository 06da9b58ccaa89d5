// internal/productapi/client.go
//
// Product API client.
//
// Context
//   The forms hand every valid product to a remote service:
//
//      POST {base}/products   body: product JSON   → created product JSON
//      GET  {base}/products                        → product JSON array
//
//   Callers never see a raw error.  Every outcome, including transport
//   failures and undecodable bodies, is folded into Result so handlers can
//   show Result.Error verbatim.
//
// Error messages
//   •  non-2xx create with a JSON {"message": "..."} body → that message.
//   •  any other non-2xx → "HTTP error! status: <code>".
//   •  transport or decode failure → the underlying error text.
//   •  an empty message falls back to "Failed to create product" or
//      "Failed to fetch products".
//
//------------------------------------------------------------------------------

package productapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/yanizio/productform/internal/metrics"
	"github.com/yanizio/productform/internal/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fallbackCreate = "Failed to create product"
	fallbackFetch  = "Failed to fetch products"

	opCreate = "create"
	opFetch  = "fetch"
)

// Result is the envelope every call returns.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](v T) Result[T] { return Result[T]{Success: true, Data: v} }

func fail[T any](msg, fallback string) Result[T] {
	if msg == "" {
		msg = fallback
	}
	return Result[T]{Error: msg}
}

// Client talks to one product API.  Safe for concurrent use.
type Client struct {
	base string
	hc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// New returns a client rooted at baseURL (scheme and host required; a
// trailing slash is ignored).
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("productapi: parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("productapi: base url %q needs an http(s) scheme and host", baseURL)
	}
	c := &Client{base: strings.TrimRight(baseURL, "/"), hc: http.DefaultClient}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.base }

//------------------------------------------------------------------------------
// Operations
//------------------------------------------------------------------------------

// CreateProduct posts p and returns the created product as echoed by the
// server.
func (c *Client) CreateProduct(ctx context.Context, p product.Product) Result[product.Product] {
	body, err := json.Marshal(p)
	if err != nil {
		return c.failed(opCreate, "encode_error", err.Error(), fallbackCreate)
	}

	status, raw, err := c.do(ctx, http.MethodPost, body)
	if err != nil {
		return c.failed(opCreate, "network_error", err.Error(), fallbackCreate)
	}
	if !is2xx(status) {
		return c.failed(opCreate, "http_error", errorMessage(status, raw), fallbackCreate)
	}

	var out product.Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return c.failed(opCreate, "decode_error", err.Error(), fallbackCreate)
	}
	metrics.APIRequests.WithLabelValues(opCreate, "ok").Inc()
	return ok(out)
}

// FetchProducts returns every product the server holds.
func (c *Client) FetchProducts(ctx context.Context) Result[[]product.Product] {
	status, raw, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return c.failedList("network_error", err.Error())
	}
	if !is2xx(status) {
		return c.failedList("http_error", statusMessage(status))
	}

	var out []product.Product
	if err := json.Unmarshal(raw, &out); err != nil {
		return c.failedList("decode_error", err.Error())
	}
	metrics.APIRequests.WithLabelValues(opFetch, "ok").Inc()
	return ok(out)
}

//------------------------------------------------------------------------------
// Helpers
//------------------------------------------------------------------------------

// do sends one request to {base}/products and reads the whole body.
func (c *Client) do(ctx context.Context, method string, body []byte) (int, []byte, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+"/products", rdr)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

func (c *Client) failed(op, outcome, msg, fallback string) Result[product.Product] {
	metrics.APIRequests.WithLabelValues(op, outcome).Inc()
	zap.S().Warnw("product api call failed", "op", op, "outcome", outcome,
		"base", c.base, "error", msg)
	return fail[product.Product](msg, fallback)
}

func (c *Client) failedList(outcome, msg string) Result[[]product.Product] {
	metrics.APIRequests.WithLabelValues(opFetch, outcome).Inc()
	zap.S().Warnw("product api call failed", "op", opFetch, "outcome", outcome,
		"base", c.base, "error", msg)
	return fail[[]product.Product](msg, fallbackFetch)
}

func is2xx(code int) bool { return code >= 200 && code < 300 }

// errorMessage prefers a JSON {"message"} body over the bare status text.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return statusMessage(status)
}

func statusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}
