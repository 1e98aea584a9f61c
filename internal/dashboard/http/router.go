package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tikkaspice/opsboard/internal/dashboard/domain"
	"github.com/tikkaspice/opsboard/internal/dashboard/service"
	"github.com/tikkaspice/opsboard/pkg/httpx"
	"github.com/tikkaspice/opsboard/pkg/jwtx"
	"github.com/tikkaspice/opsboard/pkg/slogx"

	_ "github.com/tikkaspice/opsboard/api/dashboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier  jwtx.Verifier
	cookies   CookieWriter
	startTime time.Time
	logger    *slog.Logger

	AuthService     *service.AuthService
	LocationService *service.LocationService
	GoalsService    *service.GoalsService
	DB              Pinger
}

func NewRouter(
	verifier jwtx.Verifier,
	cookies CookieWriter,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		verifier:  verifier,
		cookies:   cookies,
		startTime: time.Now(),
		logger:    logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerLocations()
	r.registerGoals()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OpsBoard API
//	@version		0.1.0
//	@description	Thin CRUD backend for the restaurant operations dashboard:
//	@description	cookie-based JWT authentication, role-gated location management,
//	@description	and per-location operational goals.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}". Browser clients authenticate with the accessToken cookie instead.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService, Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", &LogoutHandler{Cookies: r.cookies})

	refreshHandler := &RefreshHandler{AuthService: r.AuthService, Cookies: r.cookies}
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerLocations() {
	managed := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier, AccessTokenCookie),
		httpx.RequireAnyRole(domain.RoleNames(domain.ManagementRoles)...),
	}

	list := &LocationListHandler{LocationService: r.LocationService}
	r.Mux.Handle("GET /api/locations", httpx.Chain(list, managed...))

	create := &LocationCreateHandler{LocationService: r.LocationService}
	r.Mux.Handle("POST /api/locations", httpx.Chain(create, managed...))

	get := &LocationGetHandler{LocationService: r.LocationService}
	r.Mux.Handle("GET /api/locations/{id}", httpx.Chain(get, managed...))

	update := &LocationUpdateHandler{LocationService: r.LocationService}
	r.Mux.Handle("PUT /api/locations/{id}", httpx.Chain(update, managed...))

	del := &LocationDeleteHandler{LocationService: r.LocationService}
	r.Mux.Handle("DELETE /api/locations/{id}", httpx.Chain(del, managed...))
}

func (r *Router) registerGoals() {
	managed := []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier, AccessTokenCookie),
		httpx.RequireAnyRole(domain.RoleNames(domain.ManagementRoles)...),
	}

	get := &GoalsGetHandler{GoalsService: r.GoalsService}
	r.Mux.Handle("GET /api/goals", httpx.Chain(get, managed...))

	save := &GoalsSaveHandler{GoalsService: r.GoalsService}
	r.Mux.Handle("PUT /api/goals", httpx.Chain(save, managed...))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.DB),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
