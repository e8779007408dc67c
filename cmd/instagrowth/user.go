package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/workflow"
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Look up a profile, its media, and an optional growth analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runUser,
}

var (
	userAnalyze bool
	userReels   bool
	userTagged  bool
)

func init() {
	userCmd.Flags().BoolVar(&userAnalyze, "analyze", false, "Request an AI growth analysis of the profile")
	userCmd.Flags().BoolVar(&userReels, "reels", false, "Also show the profile's reels")
	userCmd.Flags().BoolVar(&userTagged, "tagged", false, "Also show media the profile is tagged in")

	rootCmd.AddCommand(userCmd)
}

func runUser(cmd *cobra.Command, args []string) error {
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

	var analyzer workflow.ProfileAnalyzer
	if userAnalyze {
		a, llmClient, err := newAnalyzer(ctx, cfg)
		if err != nil {
			return err
		}
		defer llmClient.Close() //nolint:errcheck
		analyzer = a
	}

	ctrl := workflow.NewProfileController(client, client, analyzer)
	result, err := ctrl.Search(ctx, args[0])
	if err != nil {
		return err
	}

	p := printer()
	p.PrintProfile(result.Profile, result.EngagementRate)
	p.PrintMediaGrid("POSTS", result.Media)

	if userReels {
		reels, err := ctrl.Reels(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch reels: %w", err)
		}
		p.PrintMediaGrid("REELS", reels)
	}
	if userTagged {
		tagged, err := ctrl.Tagged(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch tagged media: %w", err)
		}
		p.PrintMediaGrid("TAGGED", tagged)
	}

	if userAnalyze {
		report, err := ctrl.Analyze(ctx)
		if err != nil {
			return err
		}
		p.PrintProfileAnalysis(report)
	}
	return nil
}
