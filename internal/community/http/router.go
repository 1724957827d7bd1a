package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/commonhall/commonhall/internal/community/service"
	"github.com/commonhall/commonhall/internal/community/store"
	"github.com/commonhall/commonhall/pkg/httpx"
	"github.com/commonhall/commonhall/pkg/jwtx"
	"github.com/commonhall/commonhall/pkg/slogx"

	_ "github.com/commonhall/commonhall/api/community" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	ProfileService      *service.ProfileService
	BuildingService     *service.BuildingService
	VerificationService *service.VerificationService
	PostService         *service.PostService
	InteractionService  *service.InteractionService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBuildings()
	r.registerVerification()
	r.registerProfile()
	r.registerBoards()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Residency Community Service API
//	@version		0.1.0
//	@description	Community boards for apartment buildings. Residents verify their
//	@description	residency against a building directory and get access to their
//	@description	building's notice, share, and free boards.
//	@description
//	@description				Authentication is external: callers present Bearer JWTs minted by the
//	@description				identity provider; this service only verifies them against the
//	@description				provider's JWKS.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed builds the standard chain for an authenticated endpoint: verify the
// bearer token, ensure the membership profile exists, enforce a scope, and
// rate limit per user.
func (r *Router) authed(h http.Handler, scope string, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		EnsureProfileMiddleware(r.ProfileService),
		httpx.RequireAnyScope(scope),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerBuildings() {
	h := &BuildingsHandler{BuildingService: r.BuildingService}

	// Directory reads are needed before verification, so only community:read
	r.Mux.Handle("GET /v1/buildings",
		r.authed(http.HandlerFunc(h.HandleList), "community:read", httpx.LenientLimit))

	// Registration is a write; moderate limit keeps directory spam down
	r.Mux.Handle("POST /v1/buildings",
		r.authed(http.HandlerFunc(h.HandleCreate), "community:write", httpx.ModerateLimit))
}

func (r *Router) registerVerification() {
	h := &VerificationHandler{VerificationService: r.VerificationService}

	r.Mux.Handle("POST /v1/verification/requests",
		r.authed(http.HandlerFunc(h.HandleSubmit), "community:write", httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/verification/status",
		r.authed(http.HandlerFunc(h.HandleStatus), "community:read", httpx.LenientLimit))

	// Admin review queue
	r.Mux.Handle("GET /v1/verification/requests",
		r.authed(http.HandlerFunc(h.HandleListPending), "community:admin", httpx.ModerateLimit))

	r.Mux.Handle("POST /v1/verification/requests/{id}/review",
		r.authed(http.HandlerFunc(h.HandleReview), "community:admin", httpx.ModerateLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/profile",
		r.authed(http.HandlerFunc(h.HandleGet), "community:read", httpx.LenientLimit))

	r.Mux.Handle("PATCH /v1/profile",
		r.authed(http.HandlerFunc(h.HandleUpdate), "community:write", httpx.ModerateLimit))
}

func (r *Router) registerBoards() {
	posts := &PostsHandler{
		PostService:        r.PostService,
		InteractionService: r.InteractionService,
	}
	comments := &CommentsHandler{InteractionService: r.InteractionService}
	likes := &LikesHandler{InteractionService: r.InteractionService}

	r.Mux.Handle("POST /v1/posts",
		r.authed(http.HandlerFunc(posts.HandleCreate), "community:write", httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/posts",
		r.authed(http.HandlerFunc(posts.HandleList), "community:read", httpx.LenientLimit))

	r.Mux.Handle("GET /v1/posts/{id}",
		r.authed(http.HandlerFunc(posts.HandleGet), "community:read", httpx.LenientLimit))

	r.Mux.Handle("GET /v1/posts/{id}/comments",
		r.authed(http.HandlerFunc(comments.HandleList), "community:read", httpx.LenientLimit))

	r.Mux.Handle("POST /v1/posts/{id}/comments",
		r.authed(http.HandlerFunc(comments.HandleCreate), "community:write", httpx.ModerateLimit))

	// Toggles are bursty by nature, lenient keeps double taps working
	r.Mux.Handle("POST /v1/posts/{id}/like",
		r.authed(http.HandlerFunc(likes.HandleToggle), "community:write", httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
