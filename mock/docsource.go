package mock

import (
	"context"

	"github.com/fwojciec/docscope"
)

var _ docscope.DocSourceService = (*DocSourceService)(nil)

// DocSourceService is a mock implementation of docscope.DocSourceService.
type DocSourceService struct {
	CreateDocSourceFn   func(ctx context.Context, src *docscope.DocSource) error
	FindDocSourceByIDFn func(ctx context.Context, id string) (*docscope.DocSource, error)
	FindDocSourcesFn    func(ctx context.Context, filter docscope.DocSourceFilter) ([]*docscope.DocSource, error)
	DeleteDocSourceFn   func(ctx context.Context, id string) error
}

func (s *DocSourceService) CreateDocSource(ctx context.Context, src *docscope.DocSource) error {
	return s.CreateDocSourceFn(ctx, src)
}

func (s *DocSourceService) FindDocSourceByID(ctx context.Context, id string) (*docscope.DocSource, error) {
	return s.FindDocSourceByIDFn(ctx, id)
}

func (s *DocSourceService) FindDocSources(ctx context.Context, filter docscope.DocSourceFilter) ([]*docscope.DocSource, error) {
	return s.FindDocSourcesFn(ctx, filter)
}

func (s *DocSourceService) DeleteDocSource(ctx context.Context, id string) error {
	return s.DeleteDocSourceFn(ctx, id)
}
