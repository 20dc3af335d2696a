package mock

import (
	"context"

	"github.com/fwojciec/docscope"
)

var _ docscope.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of docscope.CatalogService.
type CatalogService struct {
	CatalogFn func(ctx context.Context) (*docscope.Catalog, error)
	RefreshFn func(ctx context.Context) error
}

func (s *CatalogService) Catalog(ctx context.Context) (*docscope.Catalog, error) {
	return s.CatalogFn(ctx)
}

func (s *CatalogService) Refresh(ctx context.Context) error {
	return s.RefreshFn(ctx)
}
