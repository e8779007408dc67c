package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// topPostSample is the per-post data embedded in the performance prompt.
type topPostSample struct {
	Caption   string `json:"caption"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments"`
	MediaType string `json:"media_type"`
}

// PostPerformance requests a what's-working report over the user's top
// posts. The top 5 posts by likes plus comments are embedded, with captions
// truncated to 150 characters.
func (a *Analyzer) PostPerformance(ctx context.Context, media []types.MediaItem) (*types.PostPerformanceReport, error) {
	top := insights.TopByInteractions(media, maxPerformancePosts)

	samples := make([]topPostSample, 0, len(top))
	for i := range top {
		caption := top[i].CaptionText()
		if caption == "" {
			caption = "No caption"
		} else if utf8.RuneCountInString(caption) > maxCaptionSnippet {
			// Truncate on a rune boundary so the JSON stays valid UTF-8.
			caption = string([]rune(caption)[:maxCaptionSnippet])
		}
		samples = append(samples, topPostSample{
			Caption:   caption,
			Likes:     top[i].LikeCount,
			Comments:  top[i].CommentCount,
			MediaType: types.MediaTypeLabel(top[i].MediaType),
		})
	}

	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return nil, &AnalysisError{UseCase: "post performance", Cause: fmt.Errorf("failed to encode post data: %w", err)}
	}

	prompt := prompts.Format(prompts.MustGet("post-performance"), map[string]string{
		"TopPostData": string(data),
	})

	var report types.PostPerformanceReport
	if err := a.generate(ctx, "post performance", schemas.PostPerformance, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
