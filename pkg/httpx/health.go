package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthChecker is satisfied by any dependency with a Ping method
// (database.Database, redisconn.Client and storage.Filesystem all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the dependencies probed by the health endpoint. A nil
// checker is reported as "disabled" and does not degrade the status.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	Storage  HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	Storage  string `json:"storage"`
}

// HealthHandler probes every dependency concurrently and answers 200 when all
// reachable ones respond, 503 with status "degraded" otherwise.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		var wg sync.WaitGroup
		probe := func(c HealthChecker, out *string) {
			if c == nil {
				*out = "disabled"
				return
			}
			wg.Go(func() {
				if err := c.Ping(ctx); err != nil {
					*out = "unreachable"
					return
				}
				*out = "ok"
			})
		}
		probe(checks.Database, &resp.Database)
		probe(checks.Redis, &resp.Redis)
		probe(checks.Storage, &resp.Storage)
		wg.Wait()

		for _, s := range []string{resp.Database, resp.Redis, resp.Storage} {
			if s == "unreachable" {
				resp.Status = "degraded"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
