package config

import (
	"github.com/keshavk21/Think41/cron/jobs"
)

// CronJob pairs a cron schedule with the function to run.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"warmdepartments": {Schedule: "@every 5m", Job: jobs.WarmDepartments},
	"pingbackend":     {Schedule: "@every 1m", Job: jobs.PingBackend},
	// Add more jobs here
}
