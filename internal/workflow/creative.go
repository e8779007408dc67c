package workflow

import (
	"context"
	"fmt"

	"github.com/jonathan/instagrowth/internal/types"
)

// CreativeAnalyzer covers the generation-only use cases that take free text
// instead of fetched profile data.
type CreativeAnalyzer interface {
	Hashtags(ctx context.Context, topic string) (*types.HashtagGroups, error)
	PostIdeas(ctx context.Context, niche string, numIdeas int) ([]types.PostIdea, error)
	AnalyzeHook(ctx context.Context, text string) (*types.HookAnalysisReport, error)
	GenerateHooks(ctx context.Context, topic, style string) ([]string, error)
}

// CreativeController drives the generation-only tools: hashtag sets, post
// ideas, and hook creation/analysis. No provider data is involved, so each
// operation is a single analysis round trip.
type CreativeController struct {
	analyzer CreativeAnalyzer

	session
}

func NewCreativeController(analyzer CreativeAnalyzer) *CreativeController {
	return &CreativeController{analyzer: analyzer}
}

// Hashtags generates a strategic hashtag set for a topic.
func (c *CreativeController) Hashtags(ctx context.Context, topic string) (*types.HashtagGroups, error) {
	if topic == "" {
		return nil, fmt.Errorf("a topic is required")
	}
	return run(c, func() (*types.HashtagGroups, error) {
		return c.analyzer.Hashtags(ctx, topic)
	})
}

// Ideas generates post ideas for a niche.
func (c *CreativeController) Ideas(ctx context.Context, niche string, numIdeas int) ([]types.PostIdea, error) {
	if niche == "" {
		return nil, fmt.Errorf("a niche is required")
	}
	if numIdeas <= 0 {
		numIdeas = 5
	}
	return run(c, func() ([]types.PostIdea, error) {
		return c.analyzer.PostIdeas(ctx, niche, numIdeas)
	})
}

// AnalyzeHook scores a hook and suggests improvements.
func (c *CreativeController) AnalyzeHook(ctx context.Context, text string) (*types.HookAnalysisReport, error) {
	if text == "" {
		return nil, fmt.Errorf("a hook to analyze is required")
	}
	return run(c, func() (*types.HookAnalysisReport, error) {
		return c.analyzer.AnalyzeHook(ctx, text)
	})
}

// GenerateHooks produces hooks for a topic in the given style.
func (c *CreativeController) GenerateHooks(ctx context.Context, topic, style string) ([]string, error) {
	if topic == "" {
		return nil, fmt.Errorf("a topic is required")
	}
	return run(c, func() ([]string, error) {
		return c.analyzer.GenerateHooks(ctx, topic, style)
	})
}

// State returns the current lifecycle state.
func (c *CreativeController) State() (Phase, error) {
	return c.state()
}

// run wraps one generation round trip in the controller lifecycle.
func run[T any](c *CreativeController, generate func() (T, error)) (T, error) {
	token := c.begin(PhaseAnalyzing, nil)
	result, err := generate()
	if err != nil {
		var zero T
		return zero, c.fail(token, err)
	}
	c.publish(token, PhaseReady, nil)
	return result, nil
}
