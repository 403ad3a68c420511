package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/entity"
)

type ResourceStorage struct {
	db *gorm.DB
}

func NewResourceStorage(db *gorm.DB) *ResourceStorage {
	return &ResourceStorage{
		db: db,
	}
}

func (s *ResourceStorage) Create(ctx context.Context, resource *entity.Resource) (*entity.Resource, error) {
	err := s.db.WithContext(ctx).Create(&resource).Error
	return resource, translateError(err)
}

func (s *ResourceStorage) Get(ctx context.Context, id string) (*entity.Resource, error) {
	var resource entity.Resource
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&resource).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &resource, nil
}

func (s *ResourceStorage) GetAll(ctx context.Context) ([]entity.Resource, error) {
	var resources []entity.Resource
	err := s.db.WithContext(ctx).Order("created_at").Find(&resources).Error
	return resources, translateError(err)
}
