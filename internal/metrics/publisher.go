package metrics

import "sync/atomic"

// publisher holds the last published snapshot behind an atomic pointer.
// Readers never block on an in-progress scrape cycle.
type publisher struct {
	current atomic.Pointer[Snapshot]
}

// Ensure publisher implements the Publisher interface.
var _ Publisher = (*publisher)(nil)

// NewPublisher creates a Publisher starting from an empty snapshot.
func NewPublisher() Publisher {
	p := &publisher{}
	p.current.Store(NewSnapshot())
	return p
}

func (p *publisher) Publish(snapshot *Snapshot) {
	p.current.Store(snapshot)
}

func (p *publisher) Current() *Snapshot {
	return p.current.Load()
}
