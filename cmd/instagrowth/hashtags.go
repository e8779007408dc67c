package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags <topic>...",
	Short: "Generate a strategic hashtag set for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHashtags,
}

func init() {
	rootCmd.AddCommand(hashtagsCmd)
}

func runHashtags(cmd *cobra.Command, args []string) error {
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
	groups, err := ctrl.Hashtags(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	printer().PrintHashtagGroups(groups)
	return nil
}
