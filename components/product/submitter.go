// components/product/submitter.go
//
// Product component: where valid products go.
//
// Context
//   Both forms hand their product to a form.Submitter.  Two are provided:
//
//   •  APISubmitter – CreateProduct against the configured API; on success
//      the server's echo is added to the display list, on failure the
//      envelope's message becomes the form's submit error.
//   •  LocalSubmitter – adds the product to the list directly.  Used when
//      api.base_url is empty.
//
//------------------------------------------------------------------------------

package product

import (
	"context"
	"errors"

	"github.com/yanizio/productform/internal/catalog"
	"github.com/yanizio/productform/internal/form"
	"github.com/yanizio/productform/internal/logger"
	domain "github.com/yanizio/productform/internal/product"
	"github.com/yanizio/productform/internal/productapi"
	"github.com/yanizio/productform/internal/requestinfo"
)

// Creator is the slice of the API client the submitter needs.
type Creator interface {
	CreateProduct(ctx context.Context, p domain.Product) productapi.Result[domain.Product]
}

var (
	_ Creator        = (*productapi.Client)(nil)
	_ form.Submitter = (*APISubmitter)(nil)
	_ form.Submitter = (*LocalSubmitter)(nil)
)

// APISubmitter creates products remotely and records successes.
type APISubmitter struct {
	API  Creator
	List *catalog.List
}

// Submit implements form.Submitter.
func (s *APISubmitter) Submit(ctx context.Context, p domain.Product) error {
	res := s.API.CreateProduct(ctx, p)
	if !res.Success {
		return errors.New(res.Error)
	}
	s.List.Add(res.Data)
	logCreated(ctx, res.Data, "api")
	return nil
}

// LocalSubmitter records products without a network call.
type LocalSubmitter struct {
	List *catalog.List
}

// Submit implements form.Submitter.
func (s *LocalSubmitter) Submit(ctx context.Context, p domain.Product) error {
	s.List.Add(p)
	logCreated(ctx, p, "local")
	return nil
}

func logCreated(ctx context.Context, p domain.Product, via string) {
	logger.FromContext(ctx).Infow("product created",
		"name", p.Name,
		"category", p.Category,
		"price", p.Price,
		"via", via,
		"device", requestinfo.Device(ctx),
	)
}
