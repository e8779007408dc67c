package workflow

import (
	"context"

	"github.com/jonathan/instagrowth/internal/types"
)

// DiscoverySource searches public accounts matching a niche query.
type DiscoverySource interface {
	DiscoverInfluencers(ctx context.Context, query string) ([]types.DiscoveredUser, error)
}

// DiscoveryController finds public influencer accounts for a niche.
type DiscoveryController struct {
	source DiscoverySource

	session
	users []types.DiscoveredUser
}

func NewDiscoveryController(source DiscoverySource) *DiscoveryController {
	return &DiscoveryController{source: source}
}

// Search runs an influencer search. Private accounts are already filtered
// out by the source.
func (c *DiscoveryController) Search(ctx context.Context, query string) ([]types.DiscoveredUser, error) {
	token := c.begin(PhaseLoading, func() { c.users = nil })

	users, err := c.source.DiscoverInfluencers(ctx, query)
	if err != nil {
		return nil, c.fail(token, err)
	}
	c.publish(token, PhaseReady, func() { c.users = users })
	return users, nil
}

// Snapshot returns the current lifecycle state and result.
func (c *DiscoveryController) Snapshot() (Phase, []types.DiscoveredUser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.users, c.err
}
