package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dogmap/dogmap-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, error)
	parseFn func(ctx context.Context, raw string) (int, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ParseToken(ctx context.Context, raw string) (int, error) {
	return s.parseFn(ctx, raw)
}

func runAuth(t *testing.T, header string, svc *stubAuthService) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedNext := false
	next := func(c echo.Context) error {
		reachedNext = true
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(svc)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, reachedNext
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return body
}

func TestAuth_MissingHeader(t *testing.T) {
	svc := &stubAuthService{
		parseFn: func(ctx context.Context, raw string) (int, error) {
			t.Fatalf("ParseToken should not be called")
			return 0, nil
		},
	}

	rec, reachedNext := runAuth(t, "", svc)
	if reachedNext {
		t.Fatalf("handler should not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body["error"] != "Token não fornecido" || body["message"] != "Token de autenticação é obrigatório" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
}

func TestAuth_HeaderWithoutToken(t *testing.T) {
	svc := &stubAuthService{
		parseFn: func(ctx context.Context, raw string) (int, error) {
			t.Fatalf("ParseToken should not be called")
			return 0, nil
		},
	}

	rec, reachedNext := runAuth(t, "Bearer", svc)
	if reachedNext {
		t.Fatalf("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body["error"] != "Token não fornecido" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	svc := &stubAuthService{
		parseFn: func(ctx context.Context, raw string) (int, error) {
			return 0, domain.ErrMalformedToken
		},
	}

	rec, reachedNext := runAuth(t, "Bearer garbage", svc)
	if reachedNext {
		t.Fatalf("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body["error"] != "Token inválido" || body["message"] != "Formato de token inválido" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuth_UnknownTokenUser(t *testing.T) {
	svc := &stubAuthService{
		parseFn: func(ctx context.Context, raw string) (int, error) {
			return 0, domain.ErrUnknownTokenUser
		},
	}

	rec, reachedNext := runAuth(t, "Bearer token_999_123", svc)
	if reachedNext {
		t.Fatalf("handler should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := decodeError(t, rec)
	if body["error"] != "Token inválido" || body["message"] != "Usuário não encontrado" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	svc := &stubAuthService{
		parseFn: func(ctx context.Context, raw string) (int, error) {
			if raw != "token_3_123" {
				t.Fatalf("unexpected raw token: %q", raw)
			}
			return 3, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token_3_123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID any
	next := func(c echo.Context) error {
		gotUserID = c.Get("userID")
		return c.NoContent(http.StatusOK)
	}

	if err := Auth(svc)(next)(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 3 {
		t.Fatalf("expected userID 3 in context, got %v", gotUserID)
	}
}
