package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"order-service/internal/metrics"
)

type Handlers struct {
	Health      http.HandlerFunc
	CreateOrder http.HandlerFunc
}

type Options struct {
	AllowedOrigins []string
	Log            zerolog.Logger
}

func NewRouter(h *Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(Recover(opts.Log))
	r.Use(CORS(opts.AllowedOrigins))
	r.Use(metrics.Middleware)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", h.Health)
	r.Post("/orders", h.CreateOrder)
	return r
}
