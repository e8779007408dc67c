package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var besttimeCmd = &cobra.Command{
	Use:   "besttime <username>",
	Short: "Find the best times to post from a profile's engagement history",
	Long:  "Find the best times to post from a profile's engagement history. At least 10 posts are required; the result is a 7x24 day-by-hour heatmap plus recommendations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBestTime,
}

func init() {
	rootCmd.AddCommand(besttimeCmd)
}

func runBestTime(cmd *cobra.Command, args []string) error {
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

	ctrl := workflow.NewBestTimeController(client, client, analyzer)
	result, err := ctrl.Analyze(ctx, args[0])
	if err != nil {
		return err
	}

	printer().PrintHeatmap(result.Report)
	return nil
}
