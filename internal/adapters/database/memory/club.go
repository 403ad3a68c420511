package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type ClubStorage struct {
	mu    sync.RWMutex
	clubs map[string]entity.Club
	order []string
}

func NewClubStorage() *ClubStorage {
	return &ClubStorage{
		clubs: make(map[string]entity.Club),
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	club.CreatedAt = now
	club.UpdatedAt = now
	s.clubs[club.ID] = *club
	s.order = append(s.order, club.ID)

	stored := s.clubs[club.ID]
	return &stored, nil
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	club, ok := s.clubs[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &club, nil
}

func (s *ClubStorage) GetAll(ctx context.Context) ([]entity.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clubs := make([]entity.Club, 0, len(s.order))
	for _, id := range s.order {
		clubs = append(clubs, s.clubs[id])
	}
	return clubs, nil
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.clubs[club.ID]
	if !ok {
		return nil, errorz.NotFound
	}
	club.CreatedAt = stored.CreatedAt
	club.UpdatedAt = time.Now()
	s.clubs[club.ID] = *club

	updated := s.clubs[club.ID]
	return &updated, nil
}
