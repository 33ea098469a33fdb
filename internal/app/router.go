package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	eventrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/event"
	locationrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/location"
	postrepo "github.com/manesha63/electNepal-sub000/internal/adapter/postgres/post"
	"github.com/manesha63/electNepal-sub000/internal/auth"
	"github.com/manesha63/electNepal-sub000/internal/config"
	ballotsvc "github.com/manesha63/electNepal-sub000/internal/service/ballot"
	contentsvc "github.com/manesha63/electNepal-sub000/internal/service/content"
	"github.com/manesha63/electNepal-sub000/internal/transport/middleware"
	"github.com/manesha63/electNepal-sub000/internal/transport/rest"
)

type routerDeps struct {
	logger      *slog.Logger
	pool        *pgxpool.Pool
	cfg         *config.Config
	jwt         *auth.JWTManager
	rateLimiter *middleware.RateLimiter
	ballot      *ballotsvc.Service
	content     *contentsvc.Service
	events      *eventrepo.Repo
	posts       *postrepo.Repo
	locations   *locationrepo.Repo
}

// newMux builds the full route table. Health probes bypass the API
// middleware chain so load balancers are never rate limited.
func newMux(d routerDeps) *http.ServeMux {
	healthHandler := rest.NewHealthHandler(d.pool, BuildVersion())
	ballotHandler := rest.NewBallotHandler(d.ballot, d.logger)
	candidateHandler := rest.NewCandidateHandler(d.content, d.logger)
	eventHandler := rest.NewEventHandler(d.content, d.events, d.logger)
	postHandler := rest.NewPostHandler(d.content, d.posts, d.logger)
	locationHandler := rest.NewLocationHandler(d.locations, d.logger)
	adminHandler := rest.NewAdminHandler(d.content, d.logger)

	api := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.logger),
		middleware.Recovery(d.logger),
		middleware.CORS(d.cfg.CORS),
		d.rateLimiter.Limit(d.cfg.RateLimit.RequestsPerMinute),
		middleware.Auth(d.jwt),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	routes := map[string]http.HandlerFunc{
		"GET /api/v1/ballot": ballotHandler.MyBallot,

		"GET /api/v1/locations/provinces":                    locationHandler.ListProvinces,
		"GET /api/v1/locations/provinces/{id}/districts":     locationHandler.ListDistricts,
		"GET /api/v1/locations/districts/{id}/municipalities": locationHandler.ListMunicipalities,

		"POST /api/v1/candidates":     candidateHandler.Register,
		"GET /api/v1/candidates/{id}": candidateHandler.Get,
		"PUT /api/v1/candidates/me":   candidateHandler.UpdateMe,
		"PUT /api/v1/translations":    candidateHandler.SetTranslation,

		"POST /api/v1/events":                  eventHandler.Create,
		"PUT /api/v1/events/{id}":              eventHandler.Update,
		"DELETE /api/v1/events/{id}":           eventHandler.Delete,
		"GET /api/v1/events/upcoming":          eventHandler.ListUpcoming,
		"GET /api/v1/candidates/{id}/events":   eventHandler.ListByCandidate,

		"POST /api/v1/posts":                 postHandler.Create,
		"PUT /api/v1/posts/{id}":             postHandler.Update,
		"DELETE /api/v1/posts/{id}":          postHandler.Delete,
		"GET /api/v1/candidates/{id}/posts":  postHandler.ListByCandidate,

		"PATCH /api/v1/admin/candidates/{id}/status": adminHandler.SetCandidateStatus,
	}
	for pattern, handler := range routes {
		mux.Handle(pattern, api(handler))
	}

	// Preflight requests are answered by the CORS middleware before this
	// handler is reached.
	mux.Handle("OPTIONS /api/v1/", api(http.NotFoundHandler()))

	return mux
}
