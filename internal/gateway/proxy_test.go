//go:build unit

package gateway_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookfair-reservation/internal/gateway"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamHit struct {
	Service   string `json:"service"`
	Path      string `json:"path"`
	Query     string `json:"query"`
	Forwarded string `json:"forwarded"`
	RequestID string `json:"requestId"`
	Auth      string `json:"auth"`
	Gateway   string `json:"gateway"`
	Via       string `json:"via"`
}

func newUpstream(t *testing.T, service string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(upstreamHit{
			Service:   service,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			Forwarded: r.Header.Get("X-Forwarded-For"),
			RequestID: r.Header.Get("X-Request-ID"),
			Auth:      r.Header.Get("Authorization"),
			Gateway:   r.Header.Get("X-Gateway-Forwarded"),
			Via:       r.Header.Get("X-Gateway-Service"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newGatewayServer serves the gateway over a real listener; the reverse proxy
// needs a request context bound to the connection.
func newGatewayServer(t *testing.T, cfg config.GatewayConfig) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw, err := gateway.New(cfg)
	require.NoError(t, err)

	logger := middleware.NewLogger(config.NewTestConfig().Log)
	engine := gin.New()
	engine.Use(logger.LoggingMiddleware())
	gw.Register(engine)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body io.Reader, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), method, srv.URL+path, body)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGatewayRouting(t *testing.T) {
	core := newUpstream(t, "core")
	email := newUpstream(t, "email")

	srv := newGatewayServer(t, config.GatewayConfig{
		CoreURL:    core.URL,
		EmailURL:   email.URL,
		ServerName: "bookfair-gateway",
	})

	tests := []struct {
		name        string
		method      string
		path        string
		wantService string
	}{
		{name: "認証APIはcoreへ転送される", method: http.MethodPost, path: "/api/auth/login", wantService: "core"},
		{name: "ユーザーAPIはcoreへ転送される", method: http.MethodGet, path: "/api/user/profile?email=a%40b.lk", wantService: "core"},
		{name: "予約APIはcoreへ転送される", method: http.MethodGet, path: "/api/reservations/available", wantService: "core"},
		{name: "管理APIはcoreへ転送される", method: http.MethodDelete, path: "/api/admin/reservations/7", wantService: "core"},
		{name: "メールAPIはemailへ転送される", method: http.MethodPost, path: "/api/email/welcome", wantService: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			header.Set("Authorization", "Bearer token-123")
			header.Set("X-Request-ID", "req-42")

			resp, raw := do(t, srv, tt.method, tt.path, strings.NewReader(`{}`), header)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			var hit upstreamHit
			require.NoError(t, json.Unmarshal(raw, &hit))

			wantPath, wantQuery, _ := strings.Cut(tt.path, "?")
			assert.Equal(t, tt.wantService, hit.Service)
			assert.Equal(t, wantPath, hit.Path)
			assert.Equal(t, wantQuery, hit.Query)
			assert.Equal(t, "req-42", hit.RequestID)
			assert.Equal(t, "Bearer token-123", hit.Auth)
			assert.Equal(t, "true", hit.Gateway)
			assert.Equal(t, "bookfair-gateway", hit.Via)
			assert.NotEmpty(t, hit.Forwarded)
			assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestGatewayUnknownPrefix(t *testing.T) {
	core := newUpstream(t, "core")
	srv := newGatewayServer(t, config.GatewayConfig{CoreURL: core.URL, EmailURL: core.URL})

	resp, _ := do(t, srv, http.MethodGet, "/api/unknown/x", nil, nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGatewayUpstreamDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	srv := newGatewayServer(t, config.GatewayConfig{CoreURL: downURL, EmailURL: downURL})

	resp, raw := do(t, srv, http.MethodGet, "/api/reservations/all", nil, nil)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.JSONEq(t, `{"error":{"message":"Upstream service unavailable"}}`, string(raw))
}

func TestGatewayHealth(t *testing.T) {
	core := newUpstream(t, "core")
	srv := newGatewayServer(t, config.GatewayConfig{CoreURL: core.URL, EmailURL: core.URL, ServerName: "gw"})

	resp, raw := do(t, srv, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"gw"}`, string(raw))
}

func TestNewRejectsInvalidURL(t *testing.T) {
	_, err := gateway.New(config.GatewayConfig{CoreURL: "not a url", EmailURL: "http://localhost:1"})
	assert.Error(t, err)

	_, err = gateway.New(config.GatewayConfig{CoreURL: "http://localhost:1", EmailURL: "localhost"})
	assert.Error(t, err)
}
