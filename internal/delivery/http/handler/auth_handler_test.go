package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/usecase/auth"
)

type fakeAuthUsecase struct {
	result auth.LoginResult
	err    error

	gotInput auth.LoginInput
}

func (u *fakeAuthUsecase) Login(ctx context.Context, in auth.LoginInput) (auth.LoginResult, error) {
	u.gotInput = in
	if u.err != nil {
		return auth.LoginResult{}, u.err
	}
	return u.result, nil
}

func newAuthTestApp(uc auth.Usecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewAuthHandler(uc).RegisterRoutes(app)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return out
}

func TestLoginHandlerSuccess(t *testing.T) {
	uc := &fakeAuthUsecase{result: auth.LoginResult{Token: "signed-token", ExpiresIn: 86400}}
	app := newAuthTestApp(uc)

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp.Body)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message"] != "Login successful" {
		t.Errorf("message = %v", body["message"])
	}
	if body["token"] != "signed-token" {
		t.Errorf("token = %v", body["token"])
	}
	if body["expires_in"] != float64(86400) {
		t.Errorf("expires_in = %v", body["expires_in"])
	}
	if uc.gotInput.Username != "admin" || uc.gotInput.Password != "secret" {
		t.Errorf("forwarded input = %+v", uc.gotInput)
	}
}

func TestLoginHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing input", auth.ErrInvalidInput, 400, "Username and password are required"},
		{"bad credentials", auth.ErrInvalidCredentials, 401, "Invalid username or password"},
		{"store down", auth.ErrServiceUnavailable, 500, "Authentication service unavailable"},
		{"unexpected", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAuthTestApp(&fakeAuthUsecase{err: tc.err})

			req := httptest.NewRequest("POST", "/login",
				strings.NewReader(`{"username":"admin","password":"secret"}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}

			body := decodeBody(t, resp.Body)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["message"] != tc.wantMsg {
				t.Errorf("message = %v, want %q", body["message"], tc.wantMsg)
			}
		})
	}
}

func TestLoginHandlerMalformedJSON(t *testing.T) {
	app := newAuthTestApp(&fakeAuthUsecase{})

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body["message"] != "Invalid JSON format" {
		t.Errorf("message = %v", body["message"])
	}
}
