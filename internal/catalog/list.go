// Package catalog keeps the products created during this process so the page
// can show them.  The list is append-only and newest first.
package catalog

import (
	"sync"

	"github.com/yanizio/productform/internal/metrics"
	"github.com/yanizio/productform/internal/product"
)

// List is a mutex-guarded, newest-first product list.
type List struct {
	mu    sync.RWMutex
	items []product.Product // oldest first; All reverses
}

// New returns an empty list.
func New() *List { return &List{} }

// Add records p as the newest entry.
func (l *List) Add(p product.Product) {
	l.mu.Lock()
	l.items = append(l.items, p)
	n := len(l.items)
	l.mu.Unlock()
	metrics.ListSize.Set(float64(n))
}

// Seed appends products fetched from the API.  ps is in server order, which
// is taken as oldest first.
func (l *List) Seed(ps []product.Product) {
	l.mu.Lock()
	l.items = append(l.items, ps...)
	n := len(l.items)
	l.mu.Unlock()
	metrics.ListSize.Set(float64(n))
}

// All returns a copy of the list, newest first.
func (l *List) All() []product.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]product.Product, len(l.items))
	for i, p := range l.items {
		out[len(l.items)-1-i] = p
	}
	return out
}

// Len reports the number of products.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
