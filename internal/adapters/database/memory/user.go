package memory

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

type UserStorage struct {
	mu    sync.RWMutex
	users map[string]entity.User
	order []string
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		users: make(map[string]entity.User),
	}
}

func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	s.order = append(s.order, user.ID)

	stored := s.users[user.ID]
	return &stored, nil
}

func (s *UserStorage) Get(ctx context.Context, id string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return &user, nil
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if user := s.users[id]; user.Email == email {
			return &user, nil
		}
	}
	return nil, errorz.NotFound
}

func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return nil, errorz.NotFound
	}
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user

	updated := s.users[user.ID]
	return &updated, nil
}
