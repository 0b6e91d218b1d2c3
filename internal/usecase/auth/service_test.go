package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"jobportal/internal/pkg/jwt"
)

type fakeCredentialStore struct {
	creds Credentials
	err   error
	calls int
}

func (s *fakeCredentialStore) AdminCredentials(ctx context.Context) (Credentials, error) {
	s.calls++
	if s.err != nil {
		return Credentials{}, s.err
	}
	return s.creds, nil
}

func hashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func newTestService(store CredentialStore) *Service {
	return NewService(store, jwt.NewHMACService(), nil)
}

func TestLoginMissingFields(t *testing.T) {
	store := &fakeCredentialStore{}
	svc := newTestService(store)

	cases := []LoginInput{
		{},
		{Username: "admin"},
		{Password: "secret"},
		{Username: "   ", Password: "secret"},
		{Username: "admin", Password: "   "},
	}
	for _, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Login(%+v) err = %v, want ErrInvalidInput", in, err)
		}
	}
	if store.calls != 0 {
		t.Errorf("credential store hit %d times before validation", store.calls)
	}
}

func TestLoginStoreFailure(t *testing.T) {
	store := &fakeCredentialStore{err: errors.New("secretsmanager down")}
	svc := newTestService(store)

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "secret"})
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("err = %v, want ErrServiceUnavailable", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("store failure must not read as bad credentials")
	}
}

func TestLoginWrongUsername(t *testing.T) {
	store := &fakeCredentialStore{creds: Credentials{
		Username:     "admin",
		PasswordHash: hashPassword("secret"),
		JWTSecret:    "signing-key",
	}}
	svc := newTestService(store)

	_, err := svc.Login(context.Background(), LoginInput{Username: "root", Password: "secret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := &fakeCredentialStore{creds: Credentials{
		Username:     "admin",
		PasswordHash: hashPassword("secret"),
		JWTSecret:    "signing-key",
	}}
	svc := newTestService(store)

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	store := &fakeCredentialStore{creds: Credentials{
		Username:     "admin",
		PasswordHash: hashPassword("secret"),
		JWTSecret:    "signing-key",
	}}
	tokens := jwt.NewHMACService()
	svc := NewService(store, tokens, nil)

	res, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.ExpiresIn != int(jwt.TokenLifetime.Seconds()) {
		t.Errorf("ExpiresIn = %d, want %d", res.ExpiresIn, int(jwt.TokenLifetime.Seconds()))
	}

	claims, err := tokens.ValidateToken(res.Token, "signing-key")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("token username = %q, want admin", claims.Username)
	}
}

func TestLoginTrimsWhitespace(t *testing.T) {
	store := &fakeCredentialStore{creds: Credentials{
		Username:     "admin",
		PasswordHash: hashPassword("secret"),
		JWTSecret:    "signing-key",
	}}
	svc := newTestService(store)

	if _, err := svc.Login(context.Background(), LoginInput{Username: "  admin  ", Password: " secret "}); err != nil {
		t.Fatalf("Login with padded input: %v", err)
	}
}
