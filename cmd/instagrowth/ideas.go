package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <niche>...",
	Short: "Generate post ideas for a niche",
	Long:  "Generate post ideas for a niche. Each idea gets a unique id that can be used to schedule it onto the content calendar.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIdeas,
}

var ideasCount int

func init() {
	ideasCmd.Flags().IntVarP(&ideasCount, "count", "n", 5, "Number of ideas to generate")

	rootCmd.AddCommand(ideasCmd)
}

func runIdeas(cmd *cobra.Command, args []string) error {
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
	ideas, err := ctrl.Ideas(ctx, strings.Join(args, " "), ideasCount)
	if err != nil {
		return err
	}

	printer().PrintIdeas(ideas)
	return nil
}
