package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	guest "github.com/mind-engage/mindengage-cognition/internal/auth"
	auth "github.com/mind-engage/mindengage-cognition/internal/auth/middleware"
	"github.com/mind-engage/mindengage-cognition/internal/baseline"
	"github.com/mind-engage/mindengage-cognition/internal/observability"
	"github.com/mind-engage/mindengage-cognition/internal/platform/logger"
	"github.com/mind-engage/mindengage-cognition/internal/profile"
	"github.com/mind-engage/mindengage-cognition/internal/rbac"
)

type RouterConfig struct {
	Service     *profile.Service
	Auth        *auth.AuthService
	Log         *logger.Logger
	CORSOrigins []string

	EnableLogin bool
	Login       auth.LoginOptions
	EnableGuest bool

	// SecureCookies marks the guest cookie Secure/SameSite=None.
	SecureCookies bool

	// Metrics is served on /metrics when non-nil.
	Metrics *observability.Metrics

	// Events enables GET /admin/events when non-nil.
	Events EventSource

	// Baselines is the table the service scores against.
	Baselines *baseline.Table

	// Ready backs /readyz; nil means always ready.
	Ready func(ctx context.Context) error
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	svc := cfg.Service

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLogin {
		r.Post("/auth/login", auth.LoginHandler(cfg.Auth, cfg.Login))
	}
	if cfg.EnableGuest {
		r.Post("/auth/guest", guest.GuestLoginHandler(cfg.Auth, cfg.SecureCookies))
	}

	// static content needs no token
	r.Get("/personality/questions", QuestionsHandler())
	r.Get("/personality/types/{code}", PersonalityTypeHandler())

	// Protected API (JWT → subject+role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(cfg.Auth))

		pr.With(rbac.Require("results:append")).
			Post("/results", RecordResultHandler(svc, log))
		// Reads of the caller's own data; a view-all grant covers them too.
		pr.With(rbac.RequireAny("results:view-own", "results:view-all")).
			Get("/results", ListResultsHandler(svc, log))
		pr.With(rbac.RequireAny("results:view-own", "results:view-all")).
			Get("/games/{gameID}/best", BestScoreHandler(svc, log))
		pr.With(rbac.RequireAny("profile:view-own", "profile:view-all")).
			Get("/profile/traits", TraitReportHandler(svc, log))

		pr.With(rbac.Require("personality:submit")).
			Post("/personality", SubmitPersonalityHandler(svc, log))
		pr.With(rbac.RequireAny("personality:view-own", "personality:view-all")).
			Get("/personality", LatestPersonalityHandler(svc, log))

		// Same reads addressed by user; owners or admins only.
		pr.Route("/users/{userID}", func(ur chi.Router) {
			ur.With(rbac.RequireOwnerOr("results:view-all", IsOwner)).
				Get("/results", ListResultsHandler(svc, log))
			ur.With(rbac.RequireOwnerOr("results:view-all", IsOwner)).
				Get("/games/{gameID}/best", BestScoreHandler(svc, log))
			ur.With(rbac.RequireOwnerOr("profile:view-all", IsOwner)).
				Get("/profile/traits", TraitReportHandler(svc, log))
			ur.With(rbac.RequireOwnerOr("personality:view-all", IsOwner)).
				Get("/personality", LatestPersonalityHandler(svc, log))
		})

		pr.Route("/admin", func(ar chi.Router) {
			if cfg.Events != nil {
				ar.With(rbac.Require("events:read")).
					Get("/events", EventsHandler(cfg.Events, log))
			}
			if cfg.Baselines != nil {
				ar.With(rbac.Require("baselines:view")).
					Get("/baselines", BaselinesHandler(cfg.Baselines))
			}
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(r.Context()); err != nil {
				log.Warn("not ready", "error", err)
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}
	return r
}
