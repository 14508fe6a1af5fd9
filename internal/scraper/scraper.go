package scraper

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/kubejob-exporter/internal/aggregator"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
	"github.com/mauv0809/kubejob-exporter/internal/metrics"
)

// New creates a Scraper. The process start horizon is taken from the clock at
// construction time: jobs created before it are cached but never counted.
func New(lister kubernetes.JobLister, cache jobcache.JobCache, publisher metrics.Publisher, clock clockwork.Clock, namespace, labelKey string, interval time.Duration) *Scraper {
	return &Scraper{
		lister:    lister,
		cache:     cache,
		publisher: publisher,
		clock:     clock,
		namespace: namespace,
		labelKey:  labelKey,
		bounds:    aggregator.DefaultDurationBuckets,
		interval:  interval,
		start:     clock.Now(),
	}
}

// Scrape runs one full cycle: fetch, admit, aggregate over everything eligible
// in the cache, and publish the three families as a single snapshot. A fetch
// failure degrades to an empty fetched set; the cycle still republishes from
// the cache and never returns an error.
func (s *Scraper) Scrape(ctx context.Context) {
	log.Info("Starting scrape cycle", "namespace", s.namespace)

	fetched, err := s.lister.ListJobs(ctx, s.namespace)
	if err != nil {
		log.Error("Unable to get jobs", "namespace", s.namespace, "error", err)
		fetched = nil
	}
	for _, job := range fetched {
		s.cache.Admit(job)
	}

	// The working set is the whole eligible cache, not this poll's delta, so
	// jobs from earlier polls keep contributing to every metric.
	eligible := s.cache.AllEligible(s.start)

	snapshot := metrics.NewSnapshot()
	snapshot.Add(metrics.Family{
		Name:     MetricJobsTotal,
		Help:     helpJobsTotal,
		Kind:     metrics.KindCounter,
		LabelKey: s.labelKey,
		Counters: aggregator.CountsByLabel(s.labelKey, eligible),
	})
	snapshot.Add(metrics.Family{
		Name:     MetricJobErrorsTotal,
		Help:     helpJobErrorsTotal,
		Kind:     metrics.KindCounter,
		LabelKey: s.labelKey,
		Counters: aggregator.CountsByLabel(s.labelKey, aggregator.ErrorJobs(eligible)),
	})
	snapshot.Add(metrics.Family{
		Name:       MetricJobDurationSeconds,
		Help:       helpJobDurationSeconds,
		Kind:       metrics.KindHistogram,
		LabelKey:   s.labelKey,
		Bounds:     s.bounds,
		Histograms: aggregator.DurationHistogramByLabel(s.labelKey, s.bounds, aggregator.SucceededJobs(eligible)),
	})
	s.publisher.Publish(snapshot)

	log.Info("Scrape cycle finished", "fetched", len(fetched), "cached", s.cache.Len(), "eligible", len(eligible))
}

// Eligible returns the cached jobs inside the start-time horizon. Used by the
// debug endpoints.
func (s *Scraper) Eligible() []kubernetes.Job {
	return s.cache.AllEligible(s.start)
}

// Run re-runs the scrape cycle on the configured interval until the context is
// cancelled. The caller is expected to have run the first cycle synchronously
// before serving, so the loop sleeps before each scrape. Cycles never overlap:
// each one completes, publish included, before the next sleep begins.
func (s *Scraper) Run(ctx context.Context) {
	log.Info("Starting poll loop", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("Poll loop stopped", "reason", ctx.Err())
			return
		case <-s.clock.After(s.interval):
			s.Scrape(ctx)
		}
	}
}
