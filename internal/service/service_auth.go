// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/angaro192/crud-financas/internal/config"
	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied when hashing passwords at
// registration time.
const bcryptCost = 10

// authService is the default [AuthService] implementation: bcrypt for
// password storage, HMAC-SHA256 JWTs for sessions, user records behind a
// [store.UserRepository].
type authService struct {
	users     store.UserRepository
	cfg       *config.StructuredConfig
	logger    *logger.Logger
	generator *utils.UUIDGenerator
}

// NewAuthService constructs an [AuthService] backed by the given repository.
// The config supplies the token signing key and lifetime.
func NewAuthService(users store.UserRepository, cfg *config.StructuredConfig, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		users:     users,
		cfg:       cfg,
		logger:    logger,
		generator: utils.NewUUIDGenerator(),
	}
}

// RegisterUser hashes the password, persists the account under a fresh
// identifier, and issues a token so the caller is signed in immediately.
//
// The duplicate-email check is left entirely to the database unique index:
// a pre-flight existence query would still race, so the INSERT outcome is
// the single source of truth.
func (s *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("hashing password: %w", err)
	}

	user := models.User{
		ID:       s.generator.Generate().String(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := s.issueToken(created)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("token issuance failed")
		return models.User{}, models.Token{}, err
	}

	return created, token, nil
}

// Login verifies the credentials and issues a fresh token.
//
// An unknown email and a wrong password both surface as
// [ErrInvalidCredentials]; the bcrypt comparison still runs only when the
// account exists, so the unknown-email path is cheaper but the caller-visible
// outcome is identical.
func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		return models.User{}, models.Token{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token issuance failed")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// GetUserByID looks up one account by its identifier.
func (s *authService) GetUserByID(ctx context.Context, id utils.UUID) (models.User, error) {
	return s.users.FindUserByID(ctx, id.String())
}

// ListUsers returns every account.
func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

// ParseToken verifies a raw JWT string against the configured signing key.
//
// Error mapping:
//   - expired token → [ErrTokenIsExpired]
//   - any other verification failure → [ErrInvalidToken]
//   - authentic token whose subject is not a canonical UUID →
//     [ErrInvalidTokenSubject]
func (s *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.App.TokenSignKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrInvalidToken
	}

	if !utils.IsValidUUID(token.UserID) {
		return models.Token{}, ErrInvalidTokenSubject
	}

	return token, nil
}

// issueToken signs a JWT for the given account with the configured key and
// lifetime.
func (s *authService) issueToken(user models.User) (models.Token, error) {
	return utils.GenerateJWTToken(
		utils.UUID(user.ID),
		user.Email,
		s.cfg.App.TokenDuration,
		s.cfg.App.TokenSignKey,
	)
}
