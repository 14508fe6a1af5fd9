package scraper

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
	"github.com/mauv0809/kubejob-exporter/internal/metrics"
)

// Exported metric names and help strings. These are part of the compatibility
// surface; scrapers alert on them.
const (
	MetricJobsTotal          = "kubernetes_jobs_total"
	MetricJobErrorsTotal     = "kubernetes_job_errors_total"
	MetricJobDurationSeconds = "kubernetes_job_duration_seconds"

	helpJobsTotal          = "Count of all kubernetes jobs"
	helpJobErrorsTotal     = "Count of all kubernetes job errors"
	helpJobDurationSeconds = "Histogram of kubernetes job durations"
)

// Scraper runs the scrape-aggregate-publish cycle. One Scraper is driven by a
// single goroutine; only the published snapshot crosses to other goroutines.
type Scraper struct {
	lister    kubernetes.JobLister
	cache     jobcache.JobCache
	publisher metrics.Publisher
	clock     clockwork.Clock

	namespace string
	labelKey  string
	bounds    []float64
	interval  time.Duration
	start     time.Time
}
