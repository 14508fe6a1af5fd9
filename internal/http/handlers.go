package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListJobsHandler dumps the eligible cached jobs as JSON. Debug aid for
// checking what the metrics are built from.
func (s *Server) ListJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs := s.Scraper.Eligible()
		log.Debug("Listing eligible cached jobs", "eligible", len(jobs), "cached", s.Cache.Len())

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"cached":   s.Cache.Len(),
			"eligible": len(jobs),
			"jobs":     jobs,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Error("Failed to encode jobs response", "error", err)
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

// ScrapeHandler runs one scrape cycle on demand, outside the scheduler's
// cadence.
func (s *Server) ScrapeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to run a scrape cycle")
		s.Scraper.Scrape(r.Context())
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Scrape cycle finished. Cached jobs: %d", s.Cache.Len())
	}
}
