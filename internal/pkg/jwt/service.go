package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"

	// TokenLifetime is fixed at 24 hours from issuance.
	TokenLifetime = 24 * time.Hour
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateToken(username, secret string) (string, error)
	ValidateToken(tokenString, secret string) (Claims, error)
}

// HMACService signs admin tokens with HS256. The signing secret comes
// from the credential store per invocation rather than being held here.
type HMACService struct {
	now func() time.Time
}

func NewHMACService() *HMACService {
	return &HMACService{now: time.Now}
}

// NewHMACServiceWithClock injects the clock for deterministic expiry in
// tests.
func NewHMACServiceWithClock(now func() time.Time) *HMACService {
	if now == nil {
		now = time.Now
	}
	return &HMACService{now: now}
}

func (s *HMACService) GenerateToken(username, secret string) (string, error) {
	if secret == "" {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(TokenLifetime)),
			Subject:   username,
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

func (s *HMACService) ValidateToken(tokenString, secret string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.Role != RoleAdmin {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
