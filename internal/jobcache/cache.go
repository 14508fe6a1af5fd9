package jobcache

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
)

// cache is the in-memory JobCache implementation, keyed by job name.
type cache struct {
	labelKey string
	mu       sync.RWMutex
	jobs     map[string]kubernetes.Job
}

// New creates a JobCache that admits jobs carrying the given label key.
func New(labelKey string) JobCache {
	return &cache{
		labelKey: labelKey,
		jobs:     make(map[string]kubernetes.Job),
	}
}

func (c *cache) Admit(job kubernetes.Job) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.jobs[job.Name]; ok {
		return
	}
	if job.Active == 1 {
		// Still running; re-evaluated on the next poll.
		return
	}
	if _, ok := job.Labels[c.labelKey]; !ok {
		return
	}
	c.jobs[job.Name] = job
	log.Debug("Admitted job into cache", "job", job.Name, "label", job.Labels[c.labelKey])
}

func (c *cache) AllEligible(since time.Time) []kubernetes.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	eligible := make([]kubernetes.Job, 0, len(c.jobs))
	for _, job := range c.jobs {
		if job.CreationTimestamp.Before(since) {
			continue
		}
		eligible = append(eligible, job)
	}
	return eligible
}

func (c *cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.jobs)
}
