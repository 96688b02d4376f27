package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/guard"
	"blog-backend/internal/shared/messages"
	"blog-backend/pkg/logger"
)

// TokenIssuer signs access tokens for an authenticated user.
type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

// userService implement user.Service interface
type userService struct {
	repo       user.Repository
	tokens     TokenIssuer
	bcryptCost int

	// compared against when the username is unknown so both login failure
	// paths spend the same bcrypt time
	dummyHash []byte
}

func NewUserService(repo user.Repository, tokens TokenIssuer, bcryptCost int) user.Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	if err != nil {
		logger.Error("Failed to prepare dummy password hash", err)
	}

	return &userService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

// Register creates an account. Username collisions are 409 whether caught by
// the pre-check or by the store's unique index.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, guard.BadRequest(messages.AuthRegisterFields)
	}
	if err := req.ValidatePassword(); err != nil {
		return nil, guard.BadRequest(messages.AuthPasswordLength)
	}

	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if exists {
		return nil, guard.Conflict(messages.AuthUsernameTaken)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, guard.BadRequest(messages.AuthPasswordLength)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, guard.Conflict(messages.AuthUsernameTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", newUser.ID).Msg("User registered")

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password produce the same 401.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, guard.BadRequest(messages.AuthRequiredFields)
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, guard.Unauthorized(messages.AuthBadCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, guard.Unauthorized(messages.AuthBadCredentials)
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.LoginResponse{
		Token: token,
		User:  u.ToDTO(),
	}, nil
}
