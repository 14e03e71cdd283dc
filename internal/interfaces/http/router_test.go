package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/admin"
	"oficina/internal/infrastructure/auth"
	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/persistence/testdb"
	"oficina/internal/infrastructure/repository"
	sharedConfig "oficina/internal/shared/config"
	"oficina/internal/shared/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	log := logger.NewNop()

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:           "test",
			BaseURL:        "http://localhost:5173",
			AllowedOrigins: []string{"http://localhost:5173"},
			StaticDir:      t.TempDir(),
		},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 5},
		},
		RateLimit: sharedConfig.RateLimitConfig{MaxAttempts: 3, LockoutSeconds: 1000, StoreTimeoutMs: 100},
		// Nothing listens on port 1, so the in-memory counter store is used.
		Redis:     sharedConfig.RedisConfig{Host: "127.0.0.1", Port: 1},
		Receipt:   sharedConfig.ReceiptConfig{ShopName: "Oficina Teste"},
		Telemetry: sharedConfig.TelemetryConfig{ServiceName: "oficina-test"},
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	admins := repository.NewAdminRepository(db, log)
	for _, email := range []string{"ana@oficina.com", "bruno@oficina.com"} {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		a, err := admin.NewAdmin(email, hash)
		require.NoError(t, err)
		require.NoError(t, admins.Create(context.Background(), a))
	}

	router := NewRouter(db, cfg, log)
	router.SetupRoutes()
	t.Cleanup(func() { router.Shutdown(context.Background()) })

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "10.0.0.1:5000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.Handler().ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "application/pdf" && w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func (s *testServer) login(email string) string {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/admin/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(s.t, resp.AccessToken)
	return resp.AccessToken
}

func decodeID(t *testing.T, data json.RawMessage) uint {
	t.Helper()
	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &v))
	require.NotZero(t, v.ID)
	return v.ID
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/usuario/me", "/clientes", "/fichas", "/minhas-fichas", "/logs"} {
		w, _ := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_LoginLockout(t *testing.T) {
	s := newTestServer(t)
	bad := map[string]string{"email": "ana@oficina.com", "password": "wrong-pass"}

	for i := 0; i < 3; i++ {
		w, _ := s.do(http.MethodPost, "/admin/login", "", bad)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	// The ceiling is reached: even the right password is refused.
	w, env := s.do(http.MethodPost, "/admin/login", "", map[string]string{
		"email":    "ANA@oficina.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "rate_limited", env.Error.Type)

	// Other accounts from the same address are unaffected.
	assert.NotEmpty(t, s.login("bruno@oficina.com"))
}

func TestRouter_TenantIsolation(t *testing.T) {
	s := newTestServer(t)
	ana := s.login("ana@oficina.com")
	bruno := s.login("bruno@oficina.com")

	w, env := s.do(http.MethodPost, "/clientes", ana, map[string]string{
		"nome":     "Carla Souza",
		"telefone": "(11) 98765-4321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID := decodeID(t, env.Data)

	w, env = s.do(http.MethodPost, fmt.Sprintf("/fichas/%d", clientID), ana, map[string]any{
		"defeito": "Tela quebrada",
		"marca":   "Acme",
		"modelo":  "X1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ticketID := decodeID(t, env.Data)

	var created struct {
		TrackingCode string `json:"codigo_rastreio"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Len(t, created.TrackingCode, 12)
	assert.Equal(t, "OPEN", created.Status)

	// Owner sees everything.
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/clientes/%d", clientID), ana, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/fichas/%d/detail", ticketID), ana, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, "/fichas/codigo/"+created.TrackingCode, ana, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, fmt.Sprintf("/fichas/%d/logs", ticketID), ana, map[string]string{
		"status":    "IN_ANALYSIS",
		"descricao": "Em analise",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Another admin gets not found on every path.
	notFound := []struct{ method, path string }{
		{http.MethodGet, fmt.Sprintf("/clientes/%d", clientID)},
		{http.MethodGet, fmt.Sprintf("/fichas/%d/detail", ticketID)},
		{http.MethodGet, fmt.Sprintf("/fichas/%d/pdf", ticketID)},
		{http.MethodGet, "/fichas/codigo/" + created.TrackingCode},
		{http.MethodDelete, fmt.Sprintf("/clientes/%d", clientID)},
	}
	for _, tc := range notFound {
		w, _ := s.do(tc.method, tc.path, bruno, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
	}
	w, _ = s.do(http.MethodPost, fmt.Sprintf("/fichas/%d", clientID), bruno, map[string]any{"defeito": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodPut, fmt.Sprintf("/fichas/%d", ticketID), bruno, map[string]any{"status": "FINISHED"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Public tracking needs no token.
	w, _ = s.do(http.MethodGet, "/rastreio/"+created.TrackingCode, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting the client removes its tickets.
	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/clientes/%d", clientID), ana, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/fichas/%d/detail", ticketID), ana, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = s.do(http.MethodGet, "/rastreio/"+created.TrackingCode, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ReceiptIsPDF(t *testing.T) {
	s := newTestServer(t)
	ana := s.login("ana@oficina.com")

	_, env := s.do(http.MethodPost, "/clientes", ana, map[string]string{
		"nome":     "Davi Lima",
		"telefone": "+5511912345678",
	})
	clientID := decodeID(t, env.Data)
	_, env = s.do(http.MethodPost, fmt.Sprintf("/fichas/%d", clientID), ana, map[string]any{"defeito": "Nao liga"})
	ticketID := decodeID(t, env.Data)

	w, _ := s.do(http.MethodGet, fmt.Sprintf("/fichas/%d/pdf", ticketID), ana, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}
