package metrics

// Publisher hands completed snapshots from the scrape cycle to concurrent
// readers. Publish replaces the whole snapshot in one atomic step, so a reader
// sees either the fully-old or fully-new set of families, never a mix.
type Publisher interface {
	Publish(snapshot *Snapshot)
	Current() *Snapshot
}
