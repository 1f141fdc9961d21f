package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/gocabs/rideflow/internal/infra/web/handler"
	"github.com/gocabs/rideflow/internal/infra/web/middleware"
	"github.com/gocabs/rideflow/pkg/logger"
	"github.com/gocabs/rideflow/pkg/metrics"
)

type RouterConfig struct {
	ServiceName    string
	Sessions       *handler.SessionHandler
	Auth           *handler.AuthHandler
	Health         http.Handler
	MetricsHandler http.Handler
	Logger         logger.Logger
	Metrics        metrics.Metrics
}

func NewRouter(conf RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(otelchi.Middleware(conf.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(conf.Logger))
	r.Use(middleware.MetricsWrapper(conf.Metrics))
	r.Use(limiter.Handler(conf.Logger))

	r.Get("/healthz", conf.Health.ServeHTTP)
	r.Handle("/metrics", conf.MetricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/places", conf.Sessions.SearchPlaces)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", conf.Sessions.Create)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/state", conf.Sessions.State)
				r.Put("/location", conf.Sessions.SetLocation)
				r.Put("/destination", conf.Sessions.SetDestination)

				r.Post("/drivers/refresh", conf.Sessions.RefreshDrivers)
				r.Put("/drivers/selected", conf.Sessions.SelectDriver)

				r.Post("/flow/advance", conf.Sessions.AdvanceFlow)
				r.Post("/flow/back", conf.Sessions.BackFlow)

				r.Post("/rides", conf.Sessions.BookRide)
				r.Get("/rides/recent", conf.Sessions.RecentRides)

				r.Post("/auth/sign_up", conf.Auth.HandleSignUp)
				r.Post("/auth/verify", conf.Auth.HandleVerify)
				r.Post("/auth/sign_in", conf.Auth.HandleSignIn)
				r.Post("/auth/sign_out", conf.Auth.HandleSignOut)
			})
		})
	})

	return r
}
