package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/instagrowth/internal/analysis"
	"github.com/jonathan/instagrowth/internal/workflow"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks <topic>...",
	Short: "Generate scroll-stopping hooks for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHooks,
}

var hooksStyle string

func init() {
	hooksCmd.Flags().StringVar(&hooksStyle, "style", "Curiosity Gap", "Hook style, one of: "+strings.Join(analysis.HookStyles, ", "))

	rootCmd.AddCommand(hooksCmd)
}

func runHooks(cmd *cobra.Command, args []string) error {
	if !validHookStyle(hooksStyle) {
		return fmt.Errorf("unknown hook style %q (valid: %s)", hooksStyle, strings.Join(analysis.HookStyles, ", "))
	}

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
	hooks, err := ctrl.GenerateHooks(ctx, strings.Join(args, " "), hooksStyle)
	if err != nil {
		return err
	}

	printer().PrintHooks(hooks)
	return nil
}

func validHookStyle(style string) bool {
	for _, s := range analysis.HookStyles {
		if strings.EqualFold(s, style) {
			return true
		}
	}
	return false
}
