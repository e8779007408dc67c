package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// HookStyles is the fixed list of hook styles the analyser may recommend
// and the creator accepts as a desired style.
var HookStyles = []string{
	"Curiosity Gap", "Bold Statement", "Question", "Storytelling",
	"Problem/Solution", "Relatable", "Educational", "Cliffhanger",
	"Humorous", "Surprising Fact", "Direct Call to Action",
}

// AnalyzeHook scores a hook (the opening line of a post or Reel) and
// suggests alternatives.
func (a *Analyzer) AnalyzeHook(ctx context.Context, text string) (*types.HookAnalysisReport, error) {
	prompt := prompts.Format(prompts.MustGet("hook-analysis"), map[string]string{
		"Hook":       text,
		"HookStyles": strings.Join(HookStyles, ", "),
	})

	var report types.HookAnalysisReport
	if err := a.generate(ctx, "hook", schemas.HookAnalysis, prompt, &report); err != nil {
		return nil, err
	}
	if err := a.checkRanges("hook", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GenerateHooks produces 5-7 hooks for a topic in the desired style.
func (a *Analyzer) GenerateHooks(ctx context.Context, topic, style string) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet("hook-creator"), map[string]string{
		"Topic": topic,
		"Style": style,
	})

	var result struct {
		Hooks []string `json:"hooks"`
	}
	if err := a.generate(ctx, "hook generation", schemas.Hooks, prompt, &result); err != nil {
		return nil, err
	}
	return result.Hooks, nil
}
