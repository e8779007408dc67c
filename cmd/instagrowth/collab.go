package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var collabCmd = &cobra.Command{
	Use:   "collab <username1> <username2>",
	Short: "Score the collaboration potential of two profiles",
	Args:  cobra.ExactArgs(2),
	RunE:  runCollab,
}

func init() {
	rootCmd.AddCommand(collabCmd)
}

func runCollab(cmd *cobra.Command, args []string) error {
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

	ctrl := workflow.NewCollabController(client, analyzer)
	result, err := ctrl.Analyze(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	printer().PrintCollabReport(result.Profile1.Username, result.Profile2.Username, result.Report)
	return nil
}
