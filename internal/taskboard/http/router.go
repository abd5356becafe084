package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/taskboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	env          string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService *service.AuthService
	TaskService *service.TaskService
	Google      *GoogleHandler // optional
	Push        http.Handler   // optional websocket endpoint
	Relay       Pinger         // optional, checked by /readyz
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, env string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		env:          env,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if len(corsOrigins) > 0 {
		r.middlewares = append(r.middlewares, httpx.CORS(corsOrigins))
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerGoogle()
	r.registerTasks()
	r.registerPush()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Multi-user task manager with sharing and real-time change notifications.
//	@description
//	@description				Sessions are HS256 JWT bearer tokens issued by register, login or Google sign-in.
//	@description				Change events are pushed over the websocket at /ws after a join-user-room message.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer authentication, actor resolution and a per
// user rate limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		requireActor(r.AuthService),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints - strict limit by IP + email to slow guessing
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.Register),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.Login),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.Logout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/auth/verify", r.secured(h.Verify, httpx.LenientLimit))
	r.Mux.Handle("GET /api/auth/profile", r.secured(h.Profile, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/auth/profile", r.secured(h.UpdateProfile, httpx.ModerateLimit))
}

func (r *Router) registerGoogle() {
	h := r.Google
	if h == nil {
		h = &GoogleHandler{AuthService: r.AuthService}
	}

	r.Mux.Handle("GET /api/auth/google",
		httpx.Chain(http.HandlerFunc(h.Start), httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
	r.Mux.Handle("GET "+callbackPath,
		httpx.Chain(http.HandlerFunc(h.Callback), httpx.RateLimitByIP(httpx.StrictLimit)),
	)
	r.Mux.Handle("GET /api/auth/google/failure", http.HandlerFunc(h.Failure))
}

func (r *Router) registerTasks() {
	h := &TaskHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /api/tasks", r.secured(h.List, httpx.LenientLimit))
	r.Mux.Handle("POST /api/tasks", r.secured(h.Create, httpx.LenientLimit))
	r.Mux.Handle("GET /api/tasks/stats", r.secured(h.Stats, httpx.LenientLimit))
	r.Mux.Handle("GET /api/tasks/{id}", r.secured(h.Get, httpx.LenientLimit))
	r.Mux.Handle("PUT /api/tasks/{id}", r.secured(h.Update, httpx.LenientLimit))
	r.Mux.Handle("DELETE /api/tasks/{id}", r.secured(h.Delete, httpx.LenientLimit))

	// Sharing looks up other accounts by email - moderate limit
	r.Mux.Handle("POST /api/tasks/{id}/share", r.secured(h.Share, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/tasks/{id}/unshare", r.secured(h.Unshare, httpx.ModerateLimit))
}

func (r *Router) registerPush() {
	if r.Push == nil {
		return
	}
	// Authentication happens in the join message, so only the upgrade is limited.
	r.Mux.Handle("GET /ws",
		httpx.Chain(r.Push, httpx.RateLimitByIP(httpx.ModerateLimit)),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Relay),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/health",
		httpx.Chain(ServerHealthHandler(r.env),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
