package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/entity"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, translateError(err)
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &club, nil
}

func (s *ClubStorage) GetAll(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Order("created_at").Find(&clubs).Error
	return clubs, translateError(err)
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, translateError(err)
}
