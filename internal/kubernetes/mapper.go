package kubernetes

import (
	"time"

	batchv1 "k8s.io/api/batch/v1"
)

// fromBatchJob converts an API job object into the exporter's view. Status
// timestamps are copied as plain *time.Time so the rest of the pipeline never
// touches apimachinery types.
func fromBatchJob(job *batchv1.Job) Job {
	var startTime, completionTime *time.Time
	if job.Status.StartTime != nil {
		t := job.Status.StartTime.Time
		startTime = &t
	}
	if job.Status.CompletionTime != nil {
		t := job.Status.CompletionTime.Time
		completionTime = &t
	}

	labels := make(map[string]string, len(job.Labels))
	for k, v := range job.Labels {
		labels[k] = v
	}

	return Job{
		Name:              job.Name,
		CreationTimestamp: job.CreationTimestamp.Time,
		Labels:            labels,
		Active:            job.Status.Active,
		Succeeded:         job.Status.Succeeded,
		StartTime:         startTime,
		CompletionTime:    completionTime,
	}
}
