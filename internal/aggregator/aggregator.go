package aggregator

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
)

// GroupByLabel partitions jobs by the value of the classification label. Every
// input job is expected to carry the label; the cache only admits jobs that do.
func GroupByLabel(labelKey string, jobs []kubernetes.Job) map[string][]kubernetes.Job {
	groups := make(map[string][]kubernetes.Job)
	for _, job := range jobs {
		value := job.Labels[labelKey]
		groups[value] = append(groups[value], job)
	}
	return groups
}

// CountsByLabel returns one entry per distinct label value with the number of
// jobs in that group, sorted by label for deterministic output.
func CountsByLabel(labelKey string, jobs []kubernetes.Job) []LabelCount {
	groups := GroupByLabel(labelKey, jobs)
	counts := make([]LabelCount, 0, len(groups))
	for label, group := range groups {
		counts = append(counts, LabelCount{Label: label, Count: float64(len(group))})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	return counts
}

// ErrorJobs returns the jobs that did not succeed.
func ErrorJobs(jobs []kubernetes.Job) []kubernetes.Job {
	errored := make([]kubernetes.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Succeeded != 1 {
			errored = append(errored, job)
		}
	}
	return errored
}

// SucceededJobs returns the jobs that succeeded.
func SucceededJobs(jobs []kubernetes.Job) []kubernetes.Job {
	succeeded := make([]kubernetes.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Succeeded == 1 {
			succeeded = append(succeeded, job)
		}
	}
	return succeeded
}

// DurationHistogramByLabel builds a cumulative duration histogram per label
// value. The input must be pre-filtered to succeeded jobs; a succeeded job
// without usable timestamps is logged and skipped rather than aborting the
// whole aggregation. Bucketing is strict less-than: a duration exactly equal
// to a bound lands in the next bucket.
func DurationHistogramByLabel(labelKey string, bounds []float64, jobs []kubernetes.Job) []LabelHistogram {
	groups := GroupByLabel(labelKey, jobs)
	histograms := make([]LabelHistogram, 0, len(groups))

	for label, group := range groups {
		h := LabelHistogram{
			Label:   label,
			Buckets: make(map[float64]uint64, len(bounds)),
		}
		for _, bound := range bounds {
			h.Buckets[bound] = 0
		}

		for _, job := range group {
			duration, err := job.Duration()
			if err != nil {
				log.Error("Skipping job with invalid duration", "job", job.Name, "error", err)
				continue
			}
			h.Sum += duration
			h.InfCount++
			for _, bound := range bounds {
				if duration < bound {
					h.Buckets[bound]++
				}
			}
		}
		histograms = append(histograms, h)
	}

	sort.Slice(histograms, func(i, j int) bool { return histograms[i].Label < histograms[j].Label })
	return histograms
}
