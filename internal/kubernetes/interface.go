package kubernetes

import "context"

// JobLister defines the interface for listing jobs from the cluster's batch API.
// This allows for mock implementations to be used in tests.
type JobLister interface {
	ListJobs(ctx context.Context, namespace string) ([]Job, error)
}
