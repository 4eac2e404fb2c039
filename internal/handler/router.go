package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"bookfair-reservation/internal/handler/api"
	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	Metrics            *metrics.Metrics
	Registry           *prometheus.Registry
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimiter        *middleware.RateLimiter
	AuthHandler        *api.AuthHandler
	UserHandler        *api.UserHandler
	ReservationHandler *api.ReservationHandler
	AdminHandler       *api.AdminHandler
	EmailHandler       *api.EmailHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.MetricsMiddleware(p.Metrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authRequired := p.AuthMiddleware.RequireAuth()
	adminOnly := p.AuthMiddleware.RequireAdmin()

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: p.AuthHandler.Register},
			{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: []gin.HandlerFunc{p.RateLimiter.Limit("login")}},
			{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout, Mw: []gin.HandlerFunc{authRequired}},
			{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me, Mw: []gin.HandlerFunc{authRequired}},
		})

		users := apiGroup.Group("/user")
		users.Use(authRequired)
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/profile", Handler: p.UserHandler.Profile},
			{Method: http.MethodPost, Path: "/genres", Handler: p.UserHandler.UpdateGenres},
			{Method: http.MethodGet, Path: "/email/:email", Handler: p.UserHandler.GetByEmail},
			{Method: http.MethodGet, Path: "/:id", Handler: p.UserHandler.GetByID},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "/available", Handler: p.ReservationHandler.Available},
			{Method: http.MethodGet, Path: "/all", Handler: p.ReservationHandler.All},
			{Method: http.MethodGet, Path: "/map-layout", Handler: p.ReservationHandler.MapLayout},
			{Method: http.MethodPost, Path: "/reserve", Handler: p.ReservationHandler.Reserve, Mw: []gin.HandlerFunc{authRequired, p.RateLimiter.Limit("reserve")}},
			{Method: http.MethodGet, Path: "/my-reservations", Handler: p.ReservationHandler.MyReservations, Mw: []gin.HandlerFunc{authRequired}},
			{Method: http.MethodPost, Path: "/stalls/:id/genres", Handler: p.ReservationHandler.UpdateStallGenres, Mw: []gin.HandlerFunc{authRequired}},
		})

		admin := apiGroup.Group("/admin")
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/stats-internal", Handler: p.AdminHandler.StatsInternal},
			{Method: http.MethodGet, Path: "/user-counts-internal", Handler: p.AdminHandler.UserCountsInternal},
		})

		adminRequired := admin.Group("")
		adminRequired.Use(authRequired, adminOnly)
		addRoutes(adminRequired, []route{
			{Method: http.MethodGet, Path: "/map-layout", Handler: p.AdminHandler.GetMapLayout},
			{Method: http.MethodPost, Path: "/map-layout", Handler: p.AdminHandler.SaveMapLayout},
			{Method: http.MethodDelete, Path: "/map-layouts", Handler: p.AdminHandler.DeleteMapLayouts},
			{Method: http.MethodGet, Path: "/reservations", Handler: p.AdminHandler.Reservations},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: p.AdminHandler.CancelReservation},
			{Method: http.MethodDelete, Path: "/clear-reservations", Handler: p.AdminHandler.ClearReservations},
			{Method: http.MethodDelete, Path: "/clear-all-data", Handler: p.AdminHandler.ClearAllData},
			{Method: http.MethodDelete, Path: "/delete-all-stalls", Handler: p.AdminHandler.DeleteAllStalls},
			{Method: http.MethodGet, Path: "/users", Handler: p.AdminHandler.Users},
			{Method: http.MethodPut, Path: "/users/:id/role", Handler: p.AdminHandler.UpdateUserRole},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: p.AdminHandler.DeleteUser},
			{Method: http.MethodGet, Path: "/stats", Handler: p.AdminHandler.Stats},
		})

		email := apiGroup.Group("/email")
		addRoutes(email, []route{
			{Method: http.MethodPost, Path: "/welcome", Handler: p.EmailHandler.Welcome},
			{Method: http.MethodPost, Path: "/reservation-request", Handler: p.EmailHandler.ReservationRequest},
			{Method: http.MethodPost, Path: "/reservation-confirmation", Handler: p.EmailHandler.ReservationConfirmation},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
