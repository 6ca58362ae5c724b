// Package transport exposes the countdown over HTTP and gRPC.
package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/halving-countdown/internal/format"
	"github.com/goodnatureofminers/halving-countdown/internal/render"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRESTHandler serves the raw snapshot at /v1/halving, the formatted view at
// /v1/halving/display and prometheus metrics at /metrics.
func NewRESTHandler(provider SnapshotProvider, formatter *format.Formatter, logger *zap.Logger) (http.Handler, error) {
	gw := gwruntime.NewServeMux()

	if err := gw.HandlePath(http.MethodGet, "/v1/halving", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		writeJSON(w, logger, provider.Snapshot())
	}); err != nil {
		return nil, fmt.Errorf("register snapshot route: %w", err)
	}
	if err := gw.HandlePath(http.MethodGet, "/v1/halving/display", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		writeJSON(w, logger, render.NewDisplay(provider.Snapshot(), formatter))
	}); err != nil {
		return nil, fmt.Errorf("register display route: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	return cors.Default().Handler(mux), nil
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}
