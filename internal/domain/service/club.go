package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
}

type clubUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type ClubService struct {
	clubStorage ClubStorage
	userStorage clubUserStorage

	// mu serializes the two-sided membership update so both the club member
	// set and the user's club list move together.
	mu sync.Mutex
}

func NewClubService(storage ClubStorage, userStorage clubUserStorage) *ClubService {
	return &ClubService{
		clubStorage: storage,
		userStorage: userStorage,
	}
}

func (s *ClubService) Create(ctx context.Context, req dto.ClubCreate) (*entity.Club, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	club := &entity.Club{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Members:     pq.StringArray{},
	}
	return s.clubStorage.Create(ctx, club)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.clubStorage.Get(ctx, id)
}

func (s *ClubService) List(ctx context.Context) ([]entity.Club, error) {
	return s.clubStorage.GetAll(ctx)
}

// Join adds the user to the club and the club to the user. Joining twice is a
// no-op that still succeeds; both sides stay consistent.
func (s *ClubService) Join(ctx context.Context, userID string, clubID string) (*entity.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		return nil, err
	}
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !club.HasMember(userID) {
		club.Members = append(club.Members, userID)
		club, err = s.clubStorage.Update(ctx, club)
		if err != nil {
			return nil, err
		}
	}

	if !user.InClub(clubID) {
		user.Clubs = append(user.Clubs, clubID)
		if _, err = s.userStorage.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return club, nil
}
