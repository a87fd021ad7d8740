package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kojiauth/kojiauth-go/internal/apperr"
	"github.com/kojiauth/kojiauth-go/internal/config"
	"github.com/kojiauth/kojiauth-go/internal/crypto"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

// UserStore is the persistence contract the auth service depends on.
// FindByEmail returns (nil, nil) when no user exists; FindByID returns
// apperr.UserNotFound instead. Create must enforce email uniqueness.
type UserStore interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService handles registration and login. It holds no per-request
// state; concurrent signups racing on the same email are settled by the
// store's unique index, not by anything in here.
type AuthService struct {
	store  UserStore
	tokens config.TokenConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, tokens config.TokenConfig) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
	}
}

// SignUp registers a new account and returns a signed token for it.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (model.AuthResponse, error) {
	if err := validateSignUp(req); err != nil {
		return model.AuthResponse{}, err
	}

	// Advisory pre-check for a friendlier error. The unique index on
	// email is the real guard; Create can still fail under a race.
	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if existing != nil {
		slog.Info("signup rejected: email already registered", "email", req.Email)
		return model.AuthResponse{}, apperr.UserAlreadyExists(req.Email)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, apperr.Unexpected(err)
	}

	user := &model.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(created, s.tokens)
	if err != nil {
		return model.AuthResponse{}, apperr.Unexpected(err)
	}

	slog.Info("user signed up", "email", created.Email, "id", created.ID)

	return model.AuthResponse{
		Token: token,
		User:  created.DTO(),
	}, nil
}

// SignIn authenticates an existing account. A missing account and a
// wrong password produce the identical InvalidCredentials error so
// responses never reveal which emails are registered.
func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) (model.AuthResponse, error) {
	user, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if user == nil {
		return model.AuthResponse{}, apperr.InvalidCredentials()
	}

	if !crypto.VerifyPassword(req.Password, user.Password) {
		slog.Info("invalid password attempt", "email", req.Email)
		return model.AuthResponse{}, apperr.InvalidCredentials()
	}

	token, err := crypto.GenerateToken(user, s.tokens)
	if err != nil {
		return model.AuthResponse{}, apperr.Unexpected(err)
	}

	slog.Info("user signed in", "email", user.Email, "id", user.ID)

	return model.AuthResponse{
		Token: token,
		User:  user.DTO(),
	}, nil
}

// CurrentUser resolves an authenticated user id to its profile.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (model.UserDTO, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return model.UserDTO{}, err
	}
	return user.DTO(), nil
}
