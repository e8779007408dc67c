// Package main provides the entry point for the instagrowth CLI, an
// Instagram growth assistant driving a remote data provider and a
// generative AI service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "instagrowth",
	Short: "AI-powered Instagram growth assistant",
	Long:  "Instagrowth analyzes Instagram profiles, competitors, and content with a generative AI service: growth reports, posting-time heatmaps, hashtag strategy, hooks, post ideas, and a local content calendar.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(flagVerbose)
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
