package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// Subject pairs a fetched profile with its media for multi-profile use
// cases.
type Subject struct {
	Profile *types.UserProfile
	Media   []types.MediaItem
}

// Competitors requests a comparative report over the given subjects. At most
// 5 captions per subject are embedded in the prompt.
func (a *Analyzer) Competitors(ctx context.Context, subjects []Subject) (*types.CompetitorReport, error) {
	var sb strings.Builder
	for _, subject := range subjects {
		captions := recentCaptions(subject.Media, maxCompetitorCaptions)
		joined := strings.Join(captions, "\n  - ")
		if joined == "" {
			joined = "No captions available."
		}
		fmt.Fprintf(&sb, "**Competitor: @%s**\n- Bio: %q\n- Followers: %d\n- Posts: %d\n- Recent Post Captions:\n  - %s\n\n",
			subject.Profile.Username, subject.Profile.Biography,
			subject.Profile.FollowerCount, subject.Profile.MediaCount, joined)
	}

	prompt := prompts.Format(prompts.MustGet("competitor-analysis"), map[string]string{
		"CompetitorData": sb.String(),
	})

	var report types.CompetitorReport
	if err := a.generate(ctx, "competitor", schemas.Competitor, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
