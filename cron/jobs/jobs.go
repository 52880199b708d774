// Package jobs holds the scheduled maintenance work referenced from
// config.CronJobs. The jobs build their own catalog client from the
// environment because config imports this package for the job table.
package jobs

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/keshavk21/Think41/catalog"
)

var (
	clientOnce sync.Once
	client     *catalog.Client
)

// backend returns the shared catalog client for job runs.
func backend() *catalog.Client {
	clientOnce.Do(func() {
		client = catalog.NewClient(catalog.Config{
			BaseURL:   os.Getenv("API_BASE_URL"),
			UserAgent: "catalog-viewer-cron",
			Debug:     os.Getenv("DEBUG") == "true",
		})
	})
	return client
}

// jobTimeout bounds a single job run so a hung backend cannot pile up
// overlapping executions.
const jobTimeout = 30 * time.Second

func jobContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), jobTimeout)
}
