package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rahulkv/movieguess/internal/config"
)

// NewHTTPServer wires the game routes plus health and metrics.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *GameHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/ask", handlers.HandleAsk)
	mux.HandleFunc("/hint", handlers.HandleHint)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}
