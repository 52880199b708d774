package jobs

import (
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	healthMu   sync.Mutex
	lastStatus string
)

// PingBackend probes the backend health endpoint and logs status
// transitions. Steady states log at debug so a healthy backend does not
// flood the log at the ping interval.
func PingBackend(args ...string) {
	ctx, cancel := jobContext()
	defer cancel()

	status := "unreachable"
	h, err := backend().Health(ctx)
	if err == nil {
		status = h.Status
	}

	healthMu.Lock()
	changed := status != lastStatus
	lastStatus = status
	healthMu.Unlock()

	switch {
	case err != nil && changed:
		log.Warn().Err(err).Msg("[CRON] backend health check failed")
	case err != nil:
		log.Debug().Err(err).Msg("[CRON] backend still unreachable")
	case changed:
		log.Info().Str("status", h.Status).Str("database", h.Database).Msg("[CRON] backend health changed")
	default:
		log.Debug().Str("status", h.Status).Msg("[CRON] backend health steady")
	}
}
