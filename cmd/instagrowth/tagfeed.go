package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var tagfeedCmd = &cobra.Command{
	Use:   "tagfeed <hashtag>",
	Short: "Browse the top media posted under a hashtag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagFeed,
}

var tagfeedSuggest bool

func init() {
	tagfeedCmd.Flags().BoolVar(&tagfeedSuggest, "suggest", false, "Search matching hashtags instead of fetching a feed")

	rootCmd.AddCommand(tagfeedCmd)
}

func runTagFeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	s, err := newStore(cfg)
	if err != nil {
		return err
	}
	client := newInstagramClient(cfg, s)
	ctrl := workflow.NewTagFeedController(client)
	ctx := cmd.Context()
	p := printer()

	if tagfeedSuggest {
		tags, err := ctrl.Suggest(ctx, args[0])
		if err != nil {
			return err
		}
		for _, tag := range tags {
			cmd.Printf("#%-30s %d posts\n", tag.Name, tag.MediaCount)
		}
		return nil
	}

	result, err := ctrl.Search(ctx, args[0])
	if err != nil {
		return err
	}
	p.PrintMediaGrid("#"+result.Tag, result.Media)
	return nil
}
