package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the exporter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the eligible jobs in the exporter's cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/jobs")
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Trigger a scrape cycle outside the poll schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/scrape")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get the exported job metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
