package workflow

import (
	"context"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/types"
)

// ProfileSource resolves a username to a profile.
type ProfileSource interface {
	SearchUser(ctx context.Context, username string) (*types.UserProfile, error)
}

// MediaSource fetches the media surfaces of a resolved profile.
type MediaSource interface {
	GetUserMedia(ctx context.Context, userID string) ([]types.MediaItem, error)
	GetUserReels(ctx context.Context, userID string) ([]types.MediaItem, error)
	GetTaggedMedia(ctx context.Context, userID string) ([]types.MediaItem, error)
}

// ProfileAnalyzer produces the growth report for a profile.
type ProfileAnalyzer interface {
	ProfileGrowth(ctx context.Context, profile *types.UserProfile, media []types.MediaItem) (*types.ProfileAnalysis, error)
}

// ProfileResult is the published outcome of a profile search.
type ProfileResult struct {
	Profile        *types.UserProfile
	Media          []types.MediaItem
	EngagementRate float64
	Analysis       *types.ProfileAnalysis
}

// ProfileController drives the profile dashboard: username search, media
// feed, locally computed engagement rate, and the optional growth report.
type ProfileController struct {
	source   ProfileSource
	media    MediaSource
	analyzer ProfileAnalyzer

	session
	result *ProfileResult
}

func NewProfileController(source ProfileSource, media MediaSource, analyzer ProfileAnalyzer) *ProfileController {
	return &ProfileController{source: source, media: media, analyzer: analyzer}
}

// Search resolves a username, rejects private profiles before any media
// fetch, loads the media feed, and computes the engagement rate.
func (c *ProfileController) Search(ctx context.Context, username string) (*ProfileResult, error) {
	token := c.begin(PhaseLoading, func() { c.result = nil })

	profile, err := c.source.SearchUser(ctx, username)
	if err != nil {
		return nil, c.fail(token, err)
	}
	if profile.IsPrivate {
		return nil, c.fail(token, &PrivateProfileError{Username: profile.Username})
	}

	media, err := c.media.GetUserMedia(ctx, profile.ID)
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &ProfileResult{
		Profile:        profile,
		Media:          media,
		EngagementRate: insights.EngagementRate(media, profile.FollowerCount),
	}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// Analyze requests the growth report for the current search result.
func (c *ProfileController) Analyze(ctx context.Context) (*types.ProfileAnalysis, error) {
	c.mu.Lock()
	current := c.result
	c.mu.Unlock()
	if current == nil {
		return nil, &NoDataError{Message: "no profile loaded: search for a username first"}
	}

	token := c.begin(PhaseAnalyzing, nil)
	report, err := c.analyzer.ProfileGrowth(ctx, current.Profile, current.Media)
	if err != nil {
		return nil, c.fail(token, err)
	}
	c.publish(token, PhaseReady, func() {
		current.Analysis = report
		c.result = current
	})
	return report, nil
}

// Reels fetches the reels surface of the current profile.
func (c *ProfileController) Reels(ctx context.Context) ([]types.MediaItem, error) {
	return c.surface(ctx, c.media.GetUserReels)
}

// Tagged fetches the tagged-media surface of the current profile.
func (c *ProfileController) Tagged(ctx context.Context) ([]types.MediaItem, error) {
	return c.surface(ctx, c.media.GetTaggedMedia)
}

func (c *ProfileController) surface(ctx context.Context, fetch func(context.Context, string) ([]types.MediaItem, error)) ([]types.MediaItem, error) {
	c.mu.Lock()
	current := c.result
	c.mu.Unlock()
	if current == nil {
		return nil, &NoDataError{Message: "no profile loaded: search for a username first"}
	}
	return fetch(ctx, current.Profile.ID)
}

// Snapshot returns the current lifecycle state and result.
func (c *ProfileController) Snapshot() (Phase, *ProfileResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
