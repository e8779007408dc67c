package types

// Media type discriminator values used by the provider.
const (
	MediaTypePhoto    = 1
	MediaTypeVideo    = 2
	MediaTypeCarousel = 8
)

// ImageVersion is a single image rendition of a media item.
type ImageVersion struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VideoVersion is a single video rendition of a media item.
type VideoVersion struct {
	URL string `json:"url"`
}

// MediaUser is the minimal embedded author reference on a media item.
type MediaUser struct {
	PK            string `json:"pk"`
	Username      string `json:"username"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// Caption holds the caption text of a media item. The provider sends null
// for caption-less posts, so it is a pointer on MediaItem.
type Caption struct {
	Text string `json:"text"`
}

// ImageVersions2 wraps the provider's rendition candidate list.
type ImageVersions2 struct {
	Candidates []ImageVersion `json:"candidates"`
}

// MediaItem is a single post, reel, or tagged-media entry.
// Engagement counters may be absent from the provider payload; absent
// counters are treated as 0 for all arithmetic.
type MediaItem struct {
	ID            string          `json:"id"`
	PK            string          `json:"pk"`
	Code          string          `json:"code"`
	User          MediaUser       `json:"user"`
	ImageVersions *ImageVersions2 `json:"image_versions2,omitempty"`
	VideoVersions []VideoVersion  `json:"video_versions,omitempty"`
	Caption       *Caption        `json:"caption"`
	LikeCount     int64           `json:"like_count,omitempty"`
	CommentCount  int64           `json:"comment_count,omitempty"`
	PlayCount     int64           `json:"play_count,omitempty"`
	ViewCount     int64           `json:"view_count,omitempty"`
	TakenAt       int64           `json:"taken_at"` // seconds since epoch
	MediaType     int             `json:"media_type"`
}

// CaptionText returns the caption text, or "" for caption-less items.
func (m *MediaItem) CaptionText() string {
	if m.Caption == nil {
		return ""
	}
	return m.Caption.Text
}

// BestImageURL returns the URL of the first image rendition, or "" when the
// item has no usable rendition. Items returning "" are not renderable and
// must be excluded from grid-style displays.
func (m *MediaItem) BestImageURL() string {
	if m.ImageVersions == nil || len(m.ImageVersions.Candidates) == 0 {
		return ""
	}
	return m.ImageVersions.Candidates[0].URL
}

// Interactions returns likes plus comments with absent counters as 0.
func (m *MediaItem) Interactions() int64 {
	return m.LikeCount + m.CommentCount
}

// MediaTypeLabel returns a human-readable label for the media type
// discriminator.
func MediaTypeLabel(mediaType int) string {
	switch mediaType {
	case MediaTypePhoto:
		return "Photo"
	case MediaTypeVideo:
		return "Video"
	case MediaTypeCarousel:
		return "Carousel"
	default:
		return "Unknown"
	}
}
