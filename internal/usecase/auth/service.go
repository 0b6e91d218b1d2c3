package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"go.uber.org/zap"

	"jobportal/internal/pkg/jwt"
)

var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrServiceUnavailable = errors.New("authentication service unavailable")
)

// Credentials is the single admin identity held by the credential store.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	JWTSecret    string `json:"jwt_secret"`
}

// CredentialStore fetches the admin identity once per login attempt.
type CredentialStore interface {
	AdminCredentials(ctx context.Context) (Credentials, error)
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int
}

type Usecase interface {
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
}

type Service struct {
	store  CredentialStore
	tokens jwt.Service
	logger *zap.Logger
}

func NewService(store CredentialStore, tokens jwt.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, tokens: tokens, logger: logger}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidInput
	}

	creds, err := s.store.AdminCredentials(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve admin credentials", zap.Error(err))
		return LoginResult{}, ErrServiceUnavailable
	}

	if !verify(username, password, creds) {
		s.logger.Warn("failed login attempt", zap.String("username", username))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(username, creds.JWTSecret)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResult{}, ErrServiceUnavailable
	}

	s.logger.Info("successful admin login", zap.String("username", username))
	return LoginResult{
		Token:     token,
		ExpiresIn: int(jwt.TokenLifetime.Seconds()),
	}, nil
}

func verify(username, password string, creds Credentials) bool {
	if username != creds.Username {
		return false
	}

	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(creds.PasswordHash)) == 1
}
