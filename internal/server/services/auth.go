// Package services contains the application core: account registration and
// authentication, token verification, and owner-scoped grocery item CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"grocerylist/internal/common"
	"grocerylist/internal/server/auth"
	"grocerylist/internal/server/config"
	"grocerylist/internal/server/models"
	"grocerylist/internal/server/repositories/repomanager"
)

type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// Register creates a new account and returns a signed bearer token for it.
// The username must be unique; the password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {

	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		ID:             uuid.NewString(),
		Username:       username,
		CredentialHash: hash,
	}

	repo := s.repomanager.Accounts(s.db)

	account, err = repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return "", common.ErrAlreadyExists
		}
		return "", fmt.Errorf("error creating account: %w", err)
	}

	return s.generateToken(account)
}

// Authenticate verifies the credentials and returns a fresh token. A missing
// account and a wrong password are reported identically.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {

	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required: %w", common.ErrValidation)
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if err := auth.CheckPassword(account.CredentialHash, password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	return s.generateToken(account)
}

// VerifyToken checks the signature and expiry of a bearer token and returns
// the embedded identity. It is re-executed on every authenticated call;
// there is no session cache.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Identity, error) {
	if tokenString == "" {
		return nil, common.ErrUnauthenticated
	}
	return auth.GetIdentityFromToken(tokenString, s.jwtSecret)
}

func (s *AuthService) generateToken(account *models.Account) (string, error) {
	identity := auth.Identity{AccountID: account.ID, Username: account.Username}
	token, err := auth.GenerateToken(identity, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}
