package mock

import (
	"context"

	"github.com/fwojciec/ldraw"
)

var _ ldraw.ModelService = (*ModelService)(nil)

// ModelService is a mock implementation of ldraw.ModelService.
type ModelService struct {
	CreateModelFn    func(ctx context.Context, m *ldraw.Model, doc *ldraw.Document) error
	FindModelByIDFn  func(ctx context.Context, id string) (*ldraw.Model, error)
	FindModelPartsFn func(ctx context.Context, modelID string) ([]*ldraw.PartSummary, error)
	FindModelRefsFn  func(ctx context.Context, modelID, parent string) ([]*ldraw.PartReference, error)
}

func (s *ModelService) CreateModel(ctx context.Context, m *ldraw.Model, doc *ldraw.Document) error {
	return s.CreateModelFn(ctx, m, doc)
}

func (s *ModelService) FindModelByID(ctx context.Context, id string) (*ldraw.Model, error) {
	return s.FindModelByIDFn(ctx, id)
}

func (s *ModelService) FindModelParts(ctx context.Context, modelID string) ([]*ldraw.PartSummary, error) {
	return s.FindModelPartsFn(ctx, modelID)
}

func (s *ModelService) FindModelRefs(ctx context.Context, modelID, parent string) ([]*ldraw.PartReference, error) {
	return s.FindModelRefsFn(ctx, modelID, parent)
}
