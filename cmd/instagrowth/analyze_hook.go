package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var analyzeHookCmd = &cobra.Command{
	Use:   "analyze-hook <text>...",
	Short: "Score the opening line of a post or Reel",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyzeHook,
}

func init() {
	rootCmd.AddCommand(analyzeHookCmd)
}

func runAnalyzeHook(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	analyzer, llmClient, err := newAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer llmClient.Close() //nolint:errcheck

	ctrl := workflow.NewCreativeController(analyzer)
	report, err := ctrl.AnalyzeHook(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	printer().PrintHookAnalysis(report)
	return nil
}
