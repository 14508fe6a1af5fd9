package metrics

import (
	"net/http"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes the last published snapshot to Prometheus. It is an
// unchecked collector: the families it serves are rebuilt every cycle, so no
// descriptors are announced up front.
type Collector struct {
	publisher Publisher
}

// Ensure Collector implements the prometheus.Collector interface.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector reading from the given Publisher.
func NewCollector(publisher Publisher) *Collector {
	return &Collector{publisher: publisher}
}

// Describe intentionally sends nothing; see the type comment.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {}

// Collect emits every family in the current snapshot in sorted-name order.
// It reads the snapshot exactly once, so a concurrent publish cannot mix old
// and new families within one scrape.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snapshot := c.publisher.Current()
	log.Debug("Serving prometheus data", "families", len(snapshot.Families))

	names := make([]string, 0, len(snapshot.Families))
	for name := range snapshot.Families {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		family := snapshot.Families[name]
		desc := prometheus.NewDesc(family.Name, family.Help, []string{family.LabelKey}, nil)

		switch family.Kind {
		case KindCounter:
			for _, sample := range family.Counters {
				ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, sample.Count, sample.Label)
			}
		case KindHistogram:
			for _, h := range family.Histograms {
				buckets := make(map[float64]uint64, len(h.Buckets))
				for bound, count := range h.Buckets {
					buckets[bound] = count
				}
				ch <- prometheus.MustNewConstHistogram(desc, h.InfCount, h.Sum, buckets, h.Label)
			}
		}
	}
}

// NewRegistry returns a registry containing only the exporter's collector,
// keeping process and Go runtime collectors off the endpoint.
func NewRegistry(collector *Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)
	return registry
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}
