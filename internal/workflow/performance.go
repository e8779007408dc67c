package workflow

import (
	"context"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/types"
)

// FeedSource fetches a profile's main media feed.
type FeedSource interface {
	GetUserMedia(ctx context.Context, userID string) ([]types.MediaItem, error)
}

// PerformanceAnalyzer produces the what's-working report over top posts.
type PerformanceAnalyzer interface {
	PostPerformance(ctx context.Context, media []types.MediaItem) (*types.PostPerformanceReport, error)
}

// PerformanceResult is the published outcome of a performance analysis.
// Posts holds the feed in the caller's requested display order; TopPosts is
// always the interaction-ranked subset that fed the analysis prompt.
type PerformanceResult struct {
	Profile        *types.UserProfile
	Posts          []types.MediaItem
	TopPosts       []types.MediaItem
	EngagementRate float64
	Report         *types.PostPerformanceReport
}

// PerformanceController analyzes which of a profile's posts perform best
// and why.
type PerformanceController struct {
	source   ProfileSource
	feed     FeedSource
	analyzer PerformanceAnalyzer

	session
	result *PerformanceResult
}

func NewPerformanceController(source ProfileSource, feed FeedSource, analyzer PerformanceAnalyzer) *PerformanceController {
	return &PerformanceController{source: source, feed: feed, analyzer: analyzer}
}

// Analyze resolves the username, rejects private profiles, and requests the
// performance report over the profile's feed. sortKey selects the display
// order of the returned posts.
func (c *PerformanceController) Analyze(ctx context.Context, username string, sortKey insights.SortKey) (*PerformanceResult, error) {
	token := c.begin(PhaseLoading, func() { c.result = nil })

	profile, err := c.source.SearchUser(ctx, username)
	if err != nil {
		return nil, c.fail(token, err)
	}
	if profile.IsPrivate {
		return nil, c.fail(token, &PrivateProfileError{Username: profile.Username})
	}

	media, err := c.feed.GetUserMedia(ctx, profile.ID)
	if err != nil {
		return nil, c.fail(token, err)
	}
	if len(media) == 0 {
		return nil, c.fail(token, &NoDataError{Message: "@" + profile.Username + " has no posts to analyze"})
	}

	c.publish(token, PhaseAnalyzing, nil)

	report, err := c.analyzer.PostPerformance(ctx, media)
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &PerformanceResult{
		Profile:        profile,
		Posts:          insights.Sorted(media, sortKey, profile.FollowerCount),
		TopPosts:       insights.TopByInteractions(media, 5),
		EngagementRate: insights.EngagementRate(media, profile.FollowerCount),
		Report:         report,
	}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// Snapshot returns the current lifecycle state and result.
func (c *PerformanceController) Snapshot() (Phase, *PerformanceResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
