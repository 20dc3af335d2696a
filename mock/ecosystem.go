package mock

import (
	"context"

	"github.com/fwojciec/docscope"
)

var _ docscope.EcosystemService = (*EcosystemService)(nil)

// EcosystemService is a mock implementation of docscope.EcosystemService.
type EcosystemService struct {
	CreateEcosystemFn   func(ctx context.Context, eco *docscope.Ecosystem) error
	FindEcosystemByIDFn func(ctx context.Context, id string) (*docscope.Ecosystem, error)
	FindEcosystemsFn    func(ctx context.Context, filter docscope.EcosystemFilter) ([]*docscope.Ecosystem, error)
	UpdateEcosystemFn   func(ctx context.Context, id string, upd docscope.EcosystemUpdate) (*docscope.Ecosystem, error)
	DeleteEcosystemFn   func(ctx context.Context, id string) error
}

func (s *EcosystemService) CreateEcosystem(ctx context.Context, eco *docscope.Ecosystem) error {
	return s.CreateEcosystemFn(ctx, eco)
}

func (s *EcosystemService) FindEcosystemByID(ctx context.Context, id string) (*docscope.Ecosystem, error) {
	return s.FindEcosystemByIDFn(ctx, id)
}

func (s *EcosystemService) FindEcosystems(ctx context.Context, filter docscope.EcosystemFilter) ([]*docscope.Ecosystem, error) {
	return s.FindEcosystemsFn(ctx, filter)
}

func (s *EcosystemService) UpdateEcosystem(ctx context.Context, id string, upd docscope.EcosystemUpdate) (*docscope.Ecosystem, error) {
	return s.UpdateEcosystemFn(ctx, id, upd)
}

func (s *EcosystemService) DeleteEcosystem(ctx context.Context, id string) error {
	return s.DeleteEcosystemFn(ctx, id)
}
