package kubernetes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestFromBatchJob(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	started := created.Add(time.Minute)
	completed := started.Add(45 * time.Second)

	t.Run("maps a finished job", func(t *testing.T) {
		in := &batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{
				Name:              "nightly-report",
				CreationTimestamp: metav1.NewTime(created),
				Labels:            map[string]string{"app": "reports"},
			},
			Status: batchv1.JobStatus{
				Succeeded:      1,
				StartTime:      &metav1.Time{Time: started},
				CompletionTime: &metav1.Time{Time: completed},
			},
		}

		out := fromBatchJob(in)

		assert.Equal(t, "nightly-report", out.Name)
		assert.Equal(t, created, out.CreationTimestamp)
		assert.Equal(t, map[string]string{"app": "reports"}, out.Labels)
		assert.Equal(t, int32(1), out.Succeeded)
		require.NotNil(t, out.StartTime)
		require.NotNil(t, out.CompletionTime)
		assert.Equal(t, started, *out.StartTime)
		assert.Equal(t, completed, *out.CompletionTime)
	})

	t.Run("nil status timestamps stay nil", func(t *testing.T) {
		in := &batchv1.Job{
			ObjectMeta: metav1.ObjectMeta{
				Name:              "pending",
				CreationTimestamp: metav1.NewTime(created),
			},
			Status: batchv1.JobStatus{Active: 1},
		}

		out := fromBatchJob(in)

		assert.Equal(t, int32(1), out.Active)
		assert.Nil(t, out.StartTime)
		assert.Nil(t, out.CompletionTime)
		assert.Empty(t, out.Labels)
	})
}

func TestJobDuration(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid timestamps", func(t *testing.T) {
		completed := started.Add(90 * time.Second)
		job := Job{Name: "ok", StartTime: &started, CompletionTime: &completed}

		d, err := job.Duration()

		require.NoError(t, err)
		assert.Equal(t, 90.0, d)
	})

	t.Run("missing completion time", func(t *testing.T) {
		job := Job{Name: "half-done", StartTime: &started}

		_, err := job.Duration()

		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "half-done", invalid.Job)
	})

	t.Run("negative duration", func(t *testing.T) {
		completed := started.Add(-time.Second)
		job := Job{Name: "time-traveler", StartTime: &started, CompletionTime: &completed}

		_, err := job.Duration()

		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid)
	})
}
