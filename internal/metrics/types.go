package metrics

import "github.com/mauv0809/kubejob-exporter/internal/aggregator"

// Kind discriminates the two family shapes the exporter produces.
type Kind int

const (
	KindCounter Kind = iota
	KindHistogram
)

// Family is one fully materialized metric family: name, help, label schema and
// the accumulated values for every label group.
type Family struct {
	Name     string
	Help     string
	Kind     Kind
	LabelKey string

	// Counters is populated for KindCounter families.
	Counters []aggregator.LabelCount

	// Bounds and Histograms are populated for KindHistogram families.
	Bounds     []float64
	Histograms []aggregator.LabelHistogram
}

// Snapshot is the complete set of families published by one scrape cycle.
// Snapshots are immutable after publish; a cycle always builds a fresh one.
type Snapshot struct {
	Families map[string]Family
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Families: make(map[string]Family)}
}

// Add registers a family under its name.
func (s *Snapshot) Add(f Family) {
	s.Families[f.Name] = f
}
