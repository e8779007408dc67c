package analysis

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// ProfileGrowth requests a growth report for a profile. At most the 10 most
// recent captions are embedded in the prompt.
func (a *Analyzer) ProfileGrowth(ctx context.Context, profile *types.UserProfile, media []types.MediaItem) (*types.ProfileAnalysis, error) {
	captions := recentCaptions(media, maxProfileCaptions)

	prompt := prompts.Format(prompts.MustGet("profile-growth"), map[string]string{
		"Username":       profile.Username,
		"FullName":       profile.FullName,
		"Biography":      profile.Biography,
		"Followers":      strconv.FormatInt(profile.FollowerCount, 10),
		"Following":      strconv.FormatInt(profile.FollowingCount, 10),
		"Posts":          strconv.FormatInt(profile.MediaCount, 10),
		"RecentCaptions": strings.Join(captions, "\n- "),
	})

	var report types.ProfileAnalysis
	if err := a.generate(ctx, "profile growth", schemas.ProfileAnalysis, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// recentCaptions returns up to n caption texts in feed order.
func recentCaptions(media []types.MediaItem, n int) []string {
	captions := make([]string, 0, n)
	for i := range media {
		if len(captions) == n {
			break
		}
		captions = append(captions, media[i].CaptionText())
	}
	return captions
}
