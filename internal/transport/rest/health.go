package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// pinger is a dependency whose reachability gates readiness.
type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency names a pinger in health output.
type Dependency struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	deps    []Dependency
	version string
}

// NewHealthHandler creates a HealthHandler over the given dependencies.
func NewHealthHandler(version string, deps ...Dependency) *HealthHandler {
	return &HealthHandler{deps: deps, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is the full health check with per-dependency latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.deps))
	healthy := true
	for _, d := range h.deps {
		start := time.Now()
		if err := d.Pinger.Ping(ctx); err != nil {
			components[d.Name] = CompStatus{Status: "down"}
			healthy = false
			continue
		}
		components[d.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, healthy
}
