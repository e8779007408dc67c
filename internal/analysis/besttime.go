package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/instagrowth/internal/prompts"
	"github.com/jonathan/instagrowth/internal/schemas"
	"github.com/jonathan/instagrowth/internal/types"
)

// postSample is the per-post data embedded in the posting-time prompt.
type postSample struct {
	Timestamp int64 `json:"timestamp"`
	Likes     int64 `json:"likes"`
	Comments  int64 `json:"comments"`
}

// BestTimeToPost requests a posting-time heatmap from the engagement history
// of media. At most 50 posts are embedded in the prompt. The minimum-sample
// gate (10 posts) is enforced by the workflow, not here.
func (a *Analyzer) BestTimeToPost(ctx context.Context, media []types.MediaItem) (*types.BestTimeToPostReport, error) {
	samples := make([]postSample, 0, min(len(media), maxBestTimePosts))
	for i := range media {
		if len(samples) == maxBestTimePosts {
			break
		}
		samples = append(samples, postSample{
			Timestamp: media[i].TakenAt,
			Likes:     media[i].LikeCount,
			Comments:  media[i].CommentCount,
		})
	}

	data, err := json.Marshal(samples)
	if err != nil {
		return nil, &AnalysisError{UseCase: "posting time", Cause: fmt.Errorf("failed to encode post data: %w", err)}
	}

	prompt := prompts.Format(prompts.MustGet("best-time-to-post"), map[string]string{
		"PostData": string(data),
	})

	var report types.BestTimeToPostReport
	if err := a.generate(ctx, "posting time", schemas.BestTimeToPost, prompt, &report); err != nil {
		return nil, err
	}
	if err := a.checkRanges("posting time", &report); err != nil {
		return nil, err
	}
	return &report, nil
}
