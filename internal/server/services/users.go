// Package services holds the server-side business logic: account management,
// checkout processing and feedback relay. Services own transactions and
// translate repository errors into the sentinels the transport layer maps to
// status codes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/server/auth"
	"github.com/arshopsy/arshopsy/internal/server/config"
	"github.com/arshopsy/arshopsy/internal/server/models"
	"github.com/arshopsy/arshopsy/internal/server/repositories/repomanager"
)

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account. The password is stretched into a salted
// verifier before it touches storage and is wiped afterwards.
func (s *UserService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	defer common.WipeByteArray(password)

	salt := common.GenerateRandByteArray(saltLen)

	user := &models.User{
		Name:     name,
		Email:    email,
		Salt:     salt,
		Verifier: deriveVerifier(password, salt),
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate checks the password against the stored verifier and, on
// success, issues a signed access token. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email string, password []byte) (*models.User, string, error) {
	defer common.WipeByteArray(password)

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !checkVerifier(user.Verifier, deriveVerifier(password, user.Salt)) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}
