package workflow

import (
	"context"
	"strings"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/types"
)

// HashtagSource fetches hashtag search results and hashtag media feeds.
type HashtagSource interface {
	SearchHashtags(ctx context.Context, query string) ([]types.Hashtag, error)
	GetMediaByHashtag(ctx context.Context, tag string) ([]types.MediaItem, error)
}

// TagFeedResult is the published outcome of a hashtag feed query.
type TagFeedResult struct {
	Tag   string
	Media []types.MediaItem
}

// TagFeedController browses the top media posted under a hashtag.
type TagFeedController struct {
	source HashtagSource

	session
	result *TagFeedResult
}

func NewTagFeedController(source HashtagSource) *TagFeedController {
	return &TagFeedController{source: source}
}

// Search fetches the media feed for a hashtag. A leading '#' is accepted
// and stripped. Items without a renderable image are dropped.
func (c *TagFeedController) Search(ctx context.Context, tag string) (*TagFeedResult, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	token := c.begin(PhaseLoading, func() { c.result = nil })

	media, err := c.source.GetMediaByHashtag(ctx, tag)
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &TagFeedResult{Tag: tag, Media: insights.Renderable(media)}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// Suggest returns hashtags matching a partial query, for type-ahead.
func (c *TagFeedController) Suggest(ctx context.Context, query string) ([]types.Hashtag, error) {
	return c.source.SearchHashtags(ctx, strings.TrimPrefix(strings.TrimSpace(query), "#"))
}

// Snapshot returns the current lifecycle state and result.
func (c *TagFeedController) Snapshot() (Phase, *TagFeedResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
