package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/circuitbreaker"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Check() error
}

// HealthHandler serves the liveness and readiness probes. Readiness
// aggregates registered dependency checks and circuit breaker state.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker registers a named dependency health check.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness reports that the process is up. Orchestrators restart the pod
// when this stops answering.
// @Summary     Liveness probe
// @Description Returns ok while the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether the catalog store and its circuit breakers are
// in a state to serve packing traffic.
// @Summary     Readiness probe
// @Description Returns ok when MongoDB is reachable and no circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "A dependency is unavailable"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks, healthy := h.runChecks()

	status := http.StatusOK
	state := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}

	c.JSON(status, gin.H{"status": state, "checks": checks})
}

// runChecks evaluates every registered checker and circuit breaker. With
// nothing registered the service itself counts as the only check.
func (h *HealthHandler) runChecks() (map[string]interface{}, bool) {
	checks := make(map[string]interface{})
	healthy := true

	for name, checker := range h.checkers {
		if err := checker.Check(); err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			healthy = false
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}
	return checks, healthy
}
