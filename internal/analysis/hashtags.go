package analysis

import (
	"context"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// Hashtags requests a strategic hashtag set for a free-text topic.
func (a *Analyzer) Hashtags(ctx context.Context, topic string) (*types.HashtagGroups, error) {
	prompt := prompts.Format(prompts.MustGet("hashtag-generator"), map[string]string{
		"Topic": topic,
	})

	var groups types.HashtagGroups
	if err := a.generate(ctx, "hashtag", schemas.HashtagGroups, prompt, &groups); err != nil {
		return nil, err
	}
	return &groups, nil
}
