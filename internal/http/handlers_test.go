package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/kubejob-exporter/internal/config"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/kubernetes"
	"github.com/mauv0809/kubejob-exporter/internal/metrics"
	"github.com/mauv0809/kubejob-exporter/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, lister *kubernetes.MockClient) *Server {
	t.Helper()

	cache := jobcache.New("app")
	publisher := metrics.NewPublisher()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	scr := scraper.New(lister, cache, publisher, clock, "batch", "app", 30*time.Second)
	registry := metrics.NewRegistry(metrics.NewCollector(publisher))

	cfg := config.Config{Namespace: "batch", JobLabel: "app", PollInterval: 30 * time.Second, Port: "8000"}
	return NewServer(cache, scr, metrics.NewMetricsHandler(registry), cfg)
}

func TestHealthCheckHandler(t *testing.T) {
	s := newTestServer(t, kubernetes.NewMockClient())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK!", rec.Body.String())
}

func TestScrapeAndListJobsHandlers(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	start := created.Add(time.Second)
	end := start.Add(45 * time.Second)

	lister := kubernetes.NewMockClient()
	lister.ListJobsFunc = func(ctx context.Context, namespace string) ([]kubernetes.Job, error) {
		return []kubernetes.Job{{
			Name:              "etl-run",
			CreationTimestamp: created,
			Labels:            map[string]string{"app": "etl"},
			Succeeded:         1,
			StartTime:         &start,
			CompletionTime:    &end,
		}}, nil
	}
	s := newTestServer(t, lister)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scrape", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cached jobs: 1")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Cached   int              `json:"cached"`
		Eligible int              `json:"eligible"`
		Jobs     []kubernetes.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Cached)
	assert.Equal(t, 1, response.Eligible)
	require.Len(t, response.Jobs, 1)
	assert.Equal(t, "etl-run", response.Jobs[0].Name)
}

func TestMetricsRoute(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	start := created.Add(time.Second)
	end := start.Add(45 * time.Second)

	lister := kubernetes.NewMockClient()
	lister.ListJobsFunc = func(ctx context.Context, namespace string) ([]kubernetes.Job, error) {
		return []kubernetes.Job{{
			Name:              "etl-run",
			CreationTimestamp: created,
			Labels:            map[string]string{"app": "etl"},
			Succeeded:         1,
			StartTime:         &start,
			CompletionTime:    &end,
		}}, nil
	}
	s := newTestServer(t, lister)
	s.Scraper.Scrape(context.Background())

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `kubernetes_jobs_total{app="etl"} 1`)
	assert.Contains(t, body, `kubernetes_job_duration_seconds_bucket{app="etl",le="60"} 1`)
	assert.Contains(t, body, `kubernetes_job_duration_seconds_sum{app="etl"} 45`)
}
