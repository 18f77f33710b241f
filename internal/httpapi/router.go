// Package httpapi exposes a read-only HTTP status surface over a running
// pipeline: liveness, per-type analyzer/actor stats, and the alert log.
package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"nrgchamp/sensormon/internal/pipeline"
	"nrgchamp/sensormon/internal/record"
)

// statusTimeout bounds how long a status handler waits on the actor
// subsystem before answering with 504.
const statusTimeout = 5 * time.Second

// NewRouter builds the mux.Router backing the status surface, reading
// from coord.
func NewRouter(coord *pipeline.Coordinator) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/stats", statsHandler(coord)).Methods(http.MethodGet)
	r.HandleFunc("/stats/{type}", typeStatsHandler(coord)).Methods(http.MethodGet)
	r.HandleFunc("/alerts", alertsHandler(coord)).Methods(http.MethodGet)
	return r
}

// WithLogging wraps next with Apache-combined-format request logging
// written to out.
func WithLogging(out io.Writer, next http.Handler) http.Handler {
	return handlers.CombinedLoggingHandler(out, next)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func statsHandler(coord *pipeline.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := coord.Stats()
		writeJSON(w, http.StatusOK, stats)
	}
}

func typeStatsHandler(coord *pipeline.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := record.Type(mux.Vars(r)["type"])
		ctx, cancel := context.WithTimeout(r.Context(), statusTimeout)
		defer cancel()
		res, err := coord.AnalyzeType(ctx, t)
		if err != nil {
			writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func alertsHandler(coord *pipeline.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), statusTimeout)
		defer cancel()
		out, err := coord.Alerts(ctx)
		if err != nil {
			writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"alerts": out})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
