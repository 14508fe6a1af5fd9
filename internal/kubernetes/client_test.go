package kubernetes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestAPIClient_ListJobs(t *testing.T) {
	created := metav1.NewTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	clientset := fake.NewSimpleClientset(
		&batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{
				Name:              "etl-run",
				Namespace:         "batch",
				CreationTimestamp: created,
				Labels:            map[string]string{"app": "etl"},
			},
			Status: batchv1.JobStatus{Succeeded: 1},
		},
		&batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "other-ns",
				Namespace: "elsewhere",
			},
		},
	)

	client := NewClientForClientset(clientset)
	jobs, err := client.ListJobs(context.Background(), "batch")

	require.NoError(t, err)
	require.Len(t, jobs, 1, "only jobs in the requested namespace should be returned")
	assert.Equal(t, "etl-run", jobs[0].Name)
	assert.Equal(t, map[string]string{"app": "etl"}, jobs[0].Labels)
	assert.Equal(t, int32(1), jobs[0].Succeeded)
}
