package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthChecker is anything the health endpoint can ping.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks lists the dependencies probed by HealthHandler. A nil checker
// is reported as "disabled" and does not degrade the overall status.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
	Temporal HealthChecker
}

// CheckResult is the outcome of one probe.
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
}

const healthTimeout = 2 * time.Second

// HealthHandler pings every dependency concurrently and answers 503 when any
// enabled one is unreachable.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	named := map[string]HealthChecker{
		"database":  checks.Database,
		"redis":     checks.Redis,
		"event_bus": checks.EventBus,
		"temporal":  checks.Temporal,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]CheckResult, len(named))}
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)

		for name, c := range named {
			if c == nil {
				resp.Checks[name] = CheckResult{Status: "disabled"}
				continue
			}
			g.Go(func() error {
				start := time.Now()
				err := c.Ping(gctx)
				res := CheckResult{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					res.Status = "unreachable"
				}

				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = res
				if err != nil {
					resp.Status = "degraded"
				}
				// a failed probe must not cancel the others
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
