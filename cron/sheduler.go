package cron

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/keshavk21/Think41/config"
)

// StartCron schedules the config job table plus every job registered through
// Register, then starts the scheduler.
func StartCron() *cron.Cron {
	c := cron.New()
	addJobs := func(jobMap map[string]config.CronJob) {
		for name, cronJob := range jobMap {
			jobFunc := cronJob.Job
			_, err := c.AddFunc(cronJob.Schedule, func() { jobFunc() })
			if err != nil {
				log.Fatal().Err(err).Str("job", name).Msg("failed to register cron job")
			}
		}
	}
	addJobs(config.CronJobs)
	for name, j := range Jobs() {
		run := j.Run
		sched := j.Schedule
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatal().Err(err).Str("job", name).Msg("failed to register cron job")
		}
	}
	c.Start()
	return c
}
