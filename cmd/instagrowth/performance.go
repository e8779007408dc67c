package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/workflow"
)

var performanceCmd = &cobra.Command{
	Use:   "performance <username>",
	Short: "Analyze which of a profile's posts perform best and why",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerformance,
}

var performanceSort string

func init() {
	performanceCmd.Flags().StringVar(&performanceSort, "sort", "latest", "Post display order: latest, likes, comments, or engagement")

	rootCmd.AddCommand(performanceCmd)
}

func runPerformance(cmd *cobra.Command, args []string) error {
	sortKey, err := insights.ParseSortKey(performanceSort)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := newStore(cfg)
	if err != nil {
		return err
	}
	client := newInstagramClient(cfg, s)
	ctx := cmd.Context()

	analyzer, llmClient, err := newAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer llmClient.Close() //nolint:errcheck

	ctrl := workflow.NewPerformanceController(client, client, analyzer)
	result, err := ctrl.Analyze(ctx, args[0], sortKey)
	if err != nil {
		return err
	}

	p := printer()
	p.PrintProfile(result.Profile, result.EngagementRate)
	p.PrintMediaGrid("POSTS ("+string(sortKey)+")", result.Posts)
	p.PrintMediaGrid("TOP POSTS", result.TopPosts)
	p.PrintPerformanceReport(result.Report)
	return nil
}
