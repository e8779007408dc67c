package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/instagrowth/internal/types"
)

// SortKey selects a media sort order for display.
type SortKey string

// Supported sort orders.
const (
	SortLatest     SortKey = "latest"
	SortLikes      SortKey = "likes"
	SortComments   SortKey = "comments"
	SortEngagement SortKey = "engagement"
)

// ParseSortKey maps a user-supplied order name to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case SortLatest, SortLikes, SortComments, SortEngagement:
		return key, nil
	}
	return "", fmt.Errorf("unknown sort order %q (valid: latest, likes, comments, engagement)", s)
}

// Renderable returns the items that have a usable image rendition. Items
// without one cannot appear in grid-style displays; they are dropped
// silently, never surfaced as an error.
func Renderable(media []types.MediaItem) []types.MediaItem {
	out := make([]types.MediaItem, 0, len(media))
	for i := range media {
		if media[i].BestImageURL() != "" {
			out = append(out, media[i])
		}
	}
	return out
}

// Sorted returns a copy of media in the requested order. Engagement order
// needs the follower count; with followerCount 0 it degrades to insertion
// order since every item scores 0.
func Sorted(media []types.MediaItem, key SortKey, followerCount int64) []types.MediaItem {
	out := make([]types.MediaItem, len(media))
	copy(out, media)

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortLikes:
			return out[i].LikeCount > out[j].LikeCount
		case SortComments:
			return out[i].CommentCount > out[j].CommentCount
		case SortEngagement:
			return PostEngagement(&out[i], followerCount) > PostEngagement(&out[j], followerCount)
		default:
			return out[i].TakenAt > out[j].TakenAt
		}
	})
	return out
}

// TopByInteractions returns up to n items ordered by likes plus comments,
// descending. Used to cap the data embedded in performance prompts.
func TopByInteractions(media []types.MediaItem, n int) []types.MediaItem {
	out := make([]types.MediaItem, len(media))
	copy(out, media)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Interactions() > out[j].Interactions()
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
