package jobcache

import (
	"time"

	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
)

// JobCache accumulates qualifying job records across polls. A job is admitted
// at most once for the process lifetime and its record is frozen at admission;
// there is no eviction.
type JobCache interface {
	// Admit inserts the job iff it is not already cached, is not active,
	// and carries the classification label. Otherwise it is a no-op.
	Admit(job kubernetes.Job)
	// AllEligible returns every cached job created at or after since.
	AllEligible(since time.Time) []kubernetes.Job
	// Len returns the number of cached jobs.
	Len() int
}
