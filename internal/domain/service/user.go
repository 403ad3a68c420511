package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
	"github.com/campushub/api/pkg/auth"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type tokenIssuer interface {
	Issue(user *entity.User) (string, error)
}

type UserService struct {
	userStorage UserStorage
	tokens      tokenIssuer
}

func NewUserService(userStorage UserStorage, tokens tokenIssuer) *UserService {
	return &UserService{
		userStorage: userStorage,
		tokens:      tokens,
	}
}

// Register creates a user with a hashed credential and signs them in.
// The role defaults to participant; an unknown role value also lands there.
func (s *UserService) Register(ctx context.Context, req dto.Register) (*dto.Auth, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userStorage.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user with this email", errorz.AlreadyExists)
	} else if !errors.Is(err, errorz.NotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:         uuid.NewString(),
		Email:      req.Email,
		Password:   hash,
		Name:       req.Name,
		Department: req.Department,
		Year:       req.Year,
		Role:       entity.ParseRole(req.Role),
		Clubs:      pq.StringArray{},
	}

	created, err := s.userStorage.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.Auth{Token: token, User: created}, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and bad
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req dto.Login) (*dto.Auth, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userStorage.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", errorz.InvalidInput)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", errorz.InvalidInput)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.Auth{Token: token, User: user}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.userStorage.Get(ctx, id)
}
