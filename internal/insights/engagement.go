// Package insights computes locally derived metrics over fetched media.
// These metrics are computed here, not by the remote AI, because they must
// be reproducible and auditable.
package insights

import "github.com/jonathan/instagrowth/internal/types"

// EngagementRate returns average per-post interactions (likes plus comments)
// divided by follower count, as a percentage. It is 0 whenever followerCount
// is 0 or the media list is empty; absent counters count as 0.
func EngagementRate(media []types.MediaItem, followerCount int64) float64 {
	if followerCount <= 0 || len(media) == 0 {
		return 0
	}

	var totalLikes, totalComments int64
	for i := range media {
		totalLikes += media[i].LikeCount
		totalComments += media[i].CommentCount
	}

	avgInteractions := float64(totalLikes+totalComments) / float64(len(media))
	return avgInteractions / float64(followerCount) * 100
}

// PostEngagement returns a single item's interactions relative to follower
// count, as a percentage. Used for per-post sort orders.
func PostEngagement(item *types.MediaItem, followerCount int64) float64 {
	if followerCount <= 0 {
		return 0
	}
	return float64(item.Interactions()) / float64(followerCount) * 100
}
