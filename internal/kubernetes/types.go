package kubernetes

import "time"

// Job is the exporter's view of a batch job. It carries only the fields the
// aggregation pipeline reads; everything else from the API object is dropped
// at mapping time.
type Job struct {
	Name              string            `json:"name"`
	CreationTimestamp time.Time         `json:"creation_timestamp"`
	Labels            map[string]string `json:"labels"`
	Active            int32             `json:"active"`
	Succeeded         int32             `json:"succeeded"`
	// StartTime and CompletionTime are nil until the job has started or
	// finished respectively. A succeeded job missing either is a
	// data-integrity problem, not a default.
	StartTime      *time.Time `json:"start_time,omitempty"`
	CompletionTime *time.Time `json:"completion_time,omitempty"`
}

// Duration returns CompletionTime minus StartTime in seconds.
// It errors when either timestamp is missing or the difference is negative.
func (j Job) Duration() (float64, error) {
	if j.StartTime == nil || j.CompletionTime == nil {
		return 0, &InvalidDurationError{Job: j.Name, Reason: "missing start or completion time"}
	}
	d := j.CompletionTime.Sub(*j.StartTime).Seconds()
	if d < 0 {
		return 0, &InvalidDurationError{Job: j.Name, Reason: "completion time precedes start time"}
	}
	return d, nil
}

// InvalidDurationError reports a job whose recorded timestamps cannot yield a
// valid duration.
type InvalidDurationError struct {
	Job    string
	Reason string
}

func (e *InvalidDurationError) Error() string {
	return "invalid duration for job " + e.Job + ": " + e.Reason
}
