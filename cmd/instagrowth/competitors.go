package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var competitorsCmd = &cobra.Command{
	Use:   "competitors <username> [username] [username]",
	Short: "Compare up to three competitor profiles",
	Long:  "Compare up to three competitor profiles. Subjects are fetched concurrently; profiles that cannot be fetched are skipped and the report is built from the rest.",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runCompetitors,
}

func init() {
	rootCmd.AddCommand(competitorsCmd)
}

func runCompetitors(cmd *cobra.Command, args []string) error {
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

	ctrl := workflow.NewCompetitorController(client, client, analyzer)
	result, err := ctrl.Analyze(ctx, args)
	if err != nil {
		return err
	}

	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipped @%s: %v\n", outcome.Username, outcome.Err)
		}
	}
	printer().PrintCompetitorReport(result.Report)
	return nil
}
