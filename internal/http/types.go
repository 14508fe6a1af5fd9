package http

import (
	"net/http"

	"github.com/mauv0809/kubejob-exporter/internal/config"
	"github.com/mauv0809/kubejob-exporter/internal/jobcache"
	"github.com/mauv0809/kubejob-exporter/internal/scraper"
)

type Server struct {
	Cache          jobcache.JobCache
	Scraper        *scraper.Scraper
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
