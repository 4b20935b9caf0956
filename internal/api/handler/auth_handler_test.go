package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{UserID: "7", Token: "token123"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["userId"] != "7" || resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"not-an-email","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, userID, currentPassword, newPassword string) error {
			if userID != "7" || currentPassword != "old!" || newPassword != "new!" {
				t.Fatalf("unexpected args: %s %s %s", userID, currentPassword, newPassword)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"old!","newPassword":"new!"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "7")

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_NoClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, userID, currentPassword, newPassword string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"currentPassword":"old!","newPassword":"new!"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/change-password", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ChangePassword(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
