package aggregator

// DefaultDurationBuckets are the histogram bucket bounds in seconds. The +Inf
// bucket is implicit.
var DefaultDurationBuckets = []float64{
	10,
	30,
	60,   // 1 minute
	180,  // 3 minutes
	480,  // 8 minutes
	1200, // 20 minutes
	3600, // 1 hour
	7200, // 2 hours
}

// LabelCount is the number of jobs sharing one classification label value.
type LabelCount struct {
	Label string
	Count float64
}

// LabelHistogram is a materialized duration histogram for one label value.
// Buckets maps each configured bound to its cumulative count; InfCount is the
// +Inf bucket, i.e. the total number of observations. Sum is total duration
// seconds.
type LabelHistogram struct {
	Label    string
	Buckets  map[float64]uint64
	InfCount uint64
	Sum      float64
}
