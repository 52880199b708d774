package jobs

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/keshavk21/Think41/core/cache"
)

// departmentListTTL keeps warmed data live across two warm intervals so a
// single failed refresh does not blank the sidebar.
const departmentListTTL int64 = 600

// WarmDepartments refreshes the cached department list and invalidates the
// rendered nav fragment so the next page view rebuilds it from fresh data.
// On fetch failure the previous entries are left in place.
func WarmDepartments(args ...string) {
	ctx, cancel := jobContext()
	defer cancel()

	start := time.Now()
	departments, err := backend().Departments(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[CRON] department warm failed, keeping cached entries")
		return
	}

	c := cache.GetInstance()
	c.Set(cache.KeyDepartmentList, departments, departmentListTTL, []string{cache.TagDepartments})
	c.Delete(cache.KeyDepartmentNav)

	log.Info().
		Int("departments", len(departments)).
		Dur("took", time.Since(start)).
		Msg("[CRON] department cache warmed")
}
