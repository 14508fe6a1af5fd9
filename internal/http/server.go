package http

import (
	"net/http"

	"github.com/mauv0809/kubejob-exporter/internal/config"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/scraper"
)

func NewServer(cache jobcache.JobCache, scraper *scraper.Scraper, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Cache:          cache,
		Scraper:        scraper,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// The metrics endpoint is served bare: Prometheus scrapes it on its own
	// cadence and the handler only reads the published snapshot.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/jobs", Chain(s.ListJobsHandler(), paramsMiddleware))
	s.Router.Handle("/scrape", Chain(s.ScrapeHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
