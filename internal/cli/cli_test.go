package cli_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanizio/productform/internal/cli"
	"github.com/yanizio/productform/internal/product"
)

var widgetArgs = []string{
	"--name", "Widget",
	"--description", "A widget",
	"--price", "9.99",
	"--category", "Electronics",
	"--stock", "5",
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "productctl")
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := run(t, append([]string{"validate"}, widgetArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "schema")
	assert.Contains(t, out, "manual")
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := run(t, "validate", "--name", "", "--price", "0", "--category", "Toys")
	require.Error(t, err)
	assert.Contains(t, out, product.MsgNameRequired)
	assert.Contains(t, out, product.MsgPriceInvalid)
	assert.Contains(t, out, "category:")
}

func TestCreateCommand(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	out, err := run(t, append([]string{"create", "--base-url", srv.URL}, widgetArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, got, `"name":"Widget"`)
	assert.NotContains(t, got, `"sku"`)
	assert.Contains(t, out, `"success": true`)
}

func TestCreateCommand_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Duplicate SKU"}`))
	}))
	defer srv.Close()

	out, err := run(t, append([]string{"create", "--base-url", srv.URL}, widgetArgs...)...)
	require.Error(t, err)
	assert.Contains(t, out, "Duplicate SKU")
}

func TestCreateCommand_InvalidSkipsAPI(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, err := run(t, "create", "--base-url", srv.URL, "--name", "Widget")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Lamp","description":"Desk lamp","price":24.5,"category":"Home & Garden","sku":"LMP-1","stockQuantity":3}]`))
	}))
	defer srv.Close()

	out, err := run(t, "list", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "$24.50")
	assert.Contains(t, out, "LMP-1")
	assert.Contains(t, out, "3 in stock")
}

func TestListCommand_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	out, err := run(t, "list", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "No Products Yet")
}

func TestListCommand_BadBaseURL(t *testing.T) {
	_, err := run(t, "list", "--base-url", "ftp://example.com")
	require.Error(t, err)
}
