package workflow

import (
	"context"

	"github.com/jonathan/instagrowth/internal/types"
)

// minBestTimePosts is the minimum engagement history required before a
// posting-time heatmap is worth requesting.
const minBestTimePosts = 10

// BestTimeAnalyzer produces the posting-time heatmap report.
type BestTimeAnalyzer interface {
	BestTimeToPost(ctx context.Context, media []types.MediaItem) (*types.BestTimeToPostReport, error)
}

// BestTimeResult is the published outcome of a posting-time analysis.
type BestTimeResult struct {
	Profile *types.UserProfile
	Report  *types.BestTimeToPostReport
}

// BestTimeController finds the best posting times for a profile from its
// engagement history.
type BestTimeController struct {
	source   ProfileSource
	feed     FeedSource
	analyzer BestTimeAnalyzer

	session
	result *BestTimeResult
}

func NewBestTimeController(source ProfileSource, feed FeedSource, analyzer BestTimeAnalyzer) *BestTimeController {
	return &BestTimeController{source: source, feed: feed, analyzer: analyzer}
}

// Analyze resolves the username, enforces the minimum-sample gate, and
// requests the heatmap report.
func (c *BestTimeController) Analyze(ctx context.Context, username string) (*BestTimeResult, error) {
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
	if len(media) < minBestTimePosts {
		return nil, c.fail(token, &InsufficientDataError{
			Username: profile.Username,
			Required: minBestTimePosts,
			Got:      len(media),
		})
	}

	c.publish(token, PhaseAnalyzing, nil)

	report, err := c.analyzer.BestTimeToPost(ctx, media)
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &BestTimeResult{Profile: profile, Report: report}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// Snapshot returns the current lifecycle state and result.
func (c *BestTimeController) Snapshot() (Phase, *BestTimeResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
