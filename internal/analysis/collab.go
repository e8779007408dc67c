package analysis

import (
	"context"
	"strconv"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// Collab requests a pairwise collaboration analysis of two profiles.
func (a *Analyzer) Collab(ctx context.Context, profile1, profile2 *types.UserProfile) (*types.CollabAnalysisReport, error) {
	prompt := prompts.Format(prompts.MustGet("collab-analysis"), map[string]string{
		"Username1":  profile1.Username,
		"Followers1": strconv.FormatInt(profile1.FollowerCount, 10),
		"Bio1":       profile1.Biography,
		"Username2":  profile2.Username,
		"Followers2": strconv.FormatInt(profile2.FollowerCount, 10),
		"Bio2":       profile2.Biography,
	})

	var report types.CollabAnalysisReport
	if err := a.generate(ctx, "collaboration", schemas.Collab, prompt, &report); err != nil {
		return nil, err
	}
	if err := a.checkRanges("collaboration", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
