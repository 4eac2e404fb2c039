package gateway

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"bookfair-reservation/internal/handler/httperr"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-ID"
	forwardedHeader = "X-Gateway-Forwarded"
	serviceHeader   = "X-Gateway-Service"
)

// CorePrefixes are served by the core service, EmailPrefixes by the email service.
var (
	CorePrefixes  = []string{"/api/auth", "/api/user", "/api/reservations", "/api/admin"}
	EmailPrefixes = []string{"/api/email"}
)

type Gateway struct {
	name  string
	core  *httputil.ReverseProxy
	email *httputil.ReverseProxy
}

func New(cfg config.GatewayConfig) (*Gateway, error) {
	core, err := newProxy("core", cfg.CoreURL)
	if err != nil {
		return nil, err
	}
	email, err := newProxy("email", cfg.EmailURL)
	if err != nil {
		return nil, err
	}
	return &Gateway{name: cfg.ServerName, core: core, email: email}, nil
}

func newProxy(upstream, raw string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s upstream url %q: %w", upstream, raw, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid %s upstream url %q: scheme and host are required", upstream, raw)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ModifyResponse: func(resp *http.Response) error {
			// CORS is answered here; upstream headers would be duplicated.
			for key := range resp.Header {
				if strings.HasPrefix(key, "Access-Control-") {
					resp.Header.Del(key)
				}
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("upstream request failed",
				"upstream", upstream,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", r.Header.Get(requestIDHeader),
				"error", err.Error())

			body := httperr.Response{Status: http.StatusBadGateway}
			body.Error.Message = "Upstream service unavailable"

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(body)
		},
	}, nil
}

func (g *Gateway) Register(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": g.name})
	})

	for _, prefix := range CorePrefixes {
		engine.Any(prefix+"/*path", g.forward(g.core))
	}
	for _, prefix := range EmailPrefixes {
		engine.Any(prefix+"/*path", g.forward(g.email))
	}
}

func (g *Gateway) forward(proxy *httputil.ReverseProxy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := middleware.GetRequestID(c); id != "" {
			c.Request.Header.Set(requestIDHeader, id)
		}
		c.Request.Header.Set(forwardedHeader, "true")
		if g.name != "" {
			c.Request.Header.Set(serviceHeader, g.name)
		}
		proxy.ServeHTTP(c.Writer, c.Request)
	}
}
