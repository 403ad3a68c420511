package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type ResourceStorage struct {
	mu        sync.RWMutex
	resources map[string]entity.Resource
	order     []string
}

func NewResourceStorage() *ResourceStorage {
	return &ResourceStorage{
		resources: make(map[string]entity.Resource),
	}
}

func (s *ResourceStorage) Create(ctx context.Context, resource *entity.Resource) (*entity.Resource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	resource.CreatedAt = now
	resource.UpdatedAt = now
	s.resources[resource.ID] = *resource
	s.order = append(s.order, resource.ID)

	stored := s.resources[resource.ID]
	return &stored, nil
}

func (s *ResourceStorage) Get(ctx context.Context, id string) (*entity.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, ok := s.resources[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &resource, nil
}

func (s *ResourceStorage) GetAll(ctx context.Context) ([]entity.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resources := make([]entity.Resource, 0, len(s.order))
	for _, id := range s.order {
		resources = append(resources, s.resources[id])
	}
	return resources, nil
}
