package handlers

import (
	"net/http"
	"time"

	"github.com/gartstein/jukebox/internal/jukebox/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the HTTP surface: the RPC procedures under
// PathPrefix and Prometheus metrics on /metrics.
func NewRouter(rpc http.Handler, corsOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           int((5 * time.Minute).Seconds()),
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Handle(PathPrefix+"*", rpc)
	return r
}
