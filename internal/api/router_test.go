package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dogmap/dogmap-api/internal/infrastructure/db/memory"
)

// The prometheus middleware registers collectors in the default registry,
// so the router is built once and shared; each test resets the store.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
	testStore  *memory.Store
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		testStore = memory.NewStore()
		testRouter = NewRouter(testStore, zerolog.Nop())
	})
	testStore.Reset()
	return testRouter
}

func do(t *testing.T, e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v (body: %s)", err, rec.Body.String())
	}
	return body
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"123456"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("no token in login response: %+v", body)
	}
	return token
}

func TestRouter_Welcome(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Bem-vindo à DogMap API!" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_Health(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_Metrics(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dogmap") {
		t.Fatalf("expected dogmap metrics in exposition, got: %.200s", rec.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/api/unknown", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Rota não encontrada" || body["message"] != "A rota /api/unknown não existe" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body["success"])
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodDelete, "/api/users", "", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Método não permitido" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_ListUsers(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/api/users", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["count"] != float64(5) {
		t.Fatalf("expected 5 seeded users, got %v", body["count"])
	}
}

func TestRouter_PlacesFilterFlow(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/api/places?type=PARQUE&limit=1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["count"] != float64(1) {
		t.Fatalf("expected 1 place, got %v", body["count"])
	}
	data, _ := body["data"].([]any)
	first, _ := data[0].(map[string]any)
	if first["type"] != "Parque" {
		t.Fatalf("unexpected place: %+v", first)
	}
}

func TestRouter_CreatePlaceRequiresAuth(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodPost, "/api/places", `{"name":"Lago Serpente","type":"Parque"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	token := login(t, e, "manu.fraga@email.com")
	rec = do(t, e, http.MethodPost, "/api/places", `{"name":"Lago Serpente","type":"Parque"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	data, _ := body["data"].(map[string]any)
	if data["id"] != float64(11) {
		t.Fatalf("expected id 11 after seed, got %+v", data)
	}
}

func TestRouter_ReviewFlow(t *testing.T) {
	e := testServer(t)
	token := login(t, e, "manu.fraga@email.com")

	// User 1 has not reviewed place 2 in the seed.
	rec := do(t, e, http.MethodPost, "/api/places/2/reviews", `{"rating":4,"comment":"Ótimo lugar"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/api/places/2/reviews", `{"rating":5,"comment":"De novo"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Avaliação duplicada" {
		t.Fatalf("unexpected body: %+v", body)
	}

	rec = do(t, e, http.MethodGet, "/api/places/2/reviews", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body = decode(t, rec)
	if body["count"] != float64(2) {
		t.Fatalf("expected seed review plus the new one, got %v", body["count"])
	}
}

func TestRouter_FavoritesOwnership(t *testing.T) {
	e := testServer(t)
	token := login(t, e, "manu.fraga@email.com")

	rec := do(t, e, http.MethodGet, "/api/users/1/favorites", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/api/users/2/favorites", "", token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's favorites, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Acesso negado" {
		t.Fatalf("unexpected body: %+v", body)
	}

	rec = do(t, e, http.MethodGet, "/api/users/1/favorites", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body = decode(t, rec)
	if body["count"] != float64(2) {
		t.Fatalf("expected 2 seeded favorites, got %v", body["count"])
	}
}

func TestRouter_FavoriteAddRemoveFlow(t *testing.T) {
	e := testServer(t)
	token := login(t, e, "manu.fraga@email.com")

	rec := do(t, e, http.MethodPost, "/api/users/1/favorites/2", "", token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/api/users/1/favorites/2", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodDelete, "/api/users/1/favorites/2", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodDelete, "/api/users/1/favorites/2", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 removing twice, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Favorito não encontrado" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRouter_StaleTokenAfterReset(t *testing.T) {
	e := testServer(t)

	rec := do(t, e, http.MethodGet, "/api/users/1/favorites", "", "token_999_1700000000000")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token user, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["message"] != "Usuário não encontrado" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
