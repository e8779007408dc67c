package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/instagrowth/internal/types"
)

// CollabAnalyzer produces the pairwise collaboration report.
type CollabAnalyzer interface {
	Collab(ctx context.Context, profile1, profile2 *types.UserProfile) (*types.CollabAnalysisReport, error)
}

// CollabResult is the published outcome of a collaboration match.
type CollabResult struct {
	Profile1 *types.UserProfile
	Profile2 *types.UserProfile
	Report   *types.CollabAnalysisReport
}

// CollabController scores the collaboration potential of exactly two
// profiles. Both fetches run concurrently and both must succeed; a pairwise
// comparison with one side missing is meaningless.
type CollabController struct {
	source   ProfileSource
	analyzer CollabAnalyzer

	session
	result *CollabResult
}

func NewCollabController(source ProfileSource, analyzer CollabAnalyzer) *CollabController {
	return &CollabController{source: source, analyzer: analyzer}
}

// Analyze fetches both usernames concurrently and requests the
// collaboration report.
func (c *CollabController) Analyze(ctx context.Context, username1, username2 string) (*CollabResult, error) {
	if username1 == "" || username2 == "" {
		return nil, fmt.Errorf("collaboration matching requires two usernames")
	}

	token := c.begin(PhaseLoading, func() { c.result = nil })

	profiles := make([]*types.UserProfile, 2)
	group, groupCtx := errgroup.WithContext(ctx)
	for i, username := range []string{username1, username2} {
		group.Go(func() error {
			profile, err := c.source.SearchUser(groupCtx, username)
			if err != nil {
				return err
			}
			if profile.IsPrivate {
				return &PrivateProfileError{Username: profile.Username}
			}
			profiles[i] = profile
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, c.fail(token, err)
	}

	c.publish(token, PhaseAnalyzing, nil)

	report, err := c.analyzer.Collab(ctx, profiles[0], profiles[1])
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &CollabResult{Profile1: profiles[0], Profile2: profiles[1], Report: report}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// Snapshot returns the current lifecycle state and result.
func (c *CollabController) Snapshot() (Phase, *CollabResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
