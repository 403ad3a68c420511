package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type ResourceStorage interface {
	Create(ctx context.Context, resource *entity.Resource) (*entity.Resource, error)
	Get(ctx context.Context, id string) (*entity.Resource, error)
	GetAll(ctx context.Context) ([]entity.Resource, error)
}

type ResourceService struct {
	resourceStorage ResourceStorage
}

func NewResourceService(storage ResourceStorage) *ResourceService {
	return &ResourceService{
		resourceStorage: storage,
	}
}

// Create registers a bookable resource, available by default.
func (s *ResourceService) Create(ctx context.Context, req dto.ResourceCreate) (*entity.Resource, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resource := &entity.Resource{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Capacity:    req.Capacity,
		Available:   true,
	}
	return s.resourceStorage.Create(ctx, resource)
}

func (s *ResourceService) Get(ctx context.Context, id string) (*entity.Resource, error) {
	return s.resourceStorage.Get(ctx, id)
}

func (s *ResourceService) List(ctx context.Context, filter dto.ResourceFilter) ([]entity.Resource, error) {
	all, err := s.resourceStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resources := make([]entity.Resource, 0, len(all))
	for _, resource := range all {
		if filter.Type != "" && resource.Type != filter.Type {
			continue
		}
		if filter.Available != nil && resource.Available != *filter.Available {
			continue
		}
		resources = append(resources, resource)
	}
	return resources, nil
}
