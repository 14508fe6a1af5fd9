package config

import "time"

// Config holds all configuration for the exporter.
type Config struct {
	// Namespace is the cluster namespace whose jobs are scraped. Required.
	Namespace string
	// JobLabel is the label key jobs are classified by.
	JobLabel string
	// PollInterval is the delay between scrape cycles.
	PollInterval time.Duration
	// Port the metrics endpoint listens on.
	Port string
}
