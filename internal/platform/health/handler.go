// Package health exposes liveness, readiness, and status probes.
package health

import (
	"net/http"
	"sync"
	"time"

	"consign/pkg/platform/httputil"

	"github.com/go-chi/chi/v5"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// CheckFunc probes a single dependency. A nil return means healthy.
type CheckFunc func() error

type namedCheck struct {
	name  string
	check CheckFunc
}

// Handler serves the probe endpoints. Checks run in registration order
// so readiness output is stable across calls.
type Handler struct {
	started     time.Time
	environment string

	mu     sync.RWMutex
	checks []namedCheck
}

// New creates a handler with no registered checks.
func New(environment string) *Handler {
	return &Handler{
		started:     time.Now(),
		environment: environment,
	}
}

// RegisterCheck adds a dependency probe to the readiness endpoint.
// Registering the same name twice replaces the earlier check.
func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.checks {
		if existing.name == name {
			h.checks[i].check = check
			return
		}
	}
	h.checks = append(h.checks, namedCheck{name: name, check: check})
}

// Register mounts the probe routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

// LivenessResponse reports only that the process is serving requests.
type LivenessResponse struct {
	Status string `json:"status"`
}

// HandleLiveness always returns 200 while the process is up.
func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

// CheckResult describes one dependency probe outcome.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse aggregates all registered dependency probes.
type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// HandleReadiness runs every registered check and returns 503 when any
// dependency is down.
func (h *Handler) HandleReadiness(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	checks := make([]namedCheck, len(h.checks))
	copy(checks, h.checks)
	h.mu.RUnlock()

	response := ReadinessResponse{Status: "ready"}
	status := http.StatusOK

	for _, c := range checks {
		result := CheckResult{Name: c.name, Status: "up"}
		if err := c.check(); err != nil {
			result.Status = "down"
			result.Error = err.Error()
			response.Status = "not_ready"
			status = http.StatusServiceUnavailable
		}
		response.Checks = append(response.Checks, result)
	}

	httputil.WriteJSON(w, status, response)
}

// StatusResponse carries build and uptime information.
type StatusResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

// HandleStatus returns version and uptime for operators.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}
