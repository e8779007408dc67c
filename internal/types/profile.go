// Package types provides type definitions for structured data used throughout the instagrowth system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UserProfile is the stable internal representation of an Instagram profile.
// The instagram package maps provider-specific field names onto this shape so
// the rest of the system never sees the provider's schema.
type UserProfile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Biography     string `json:"biography"`
	ProfilePicURL string `json:"profile_pic_url"`
	ExternalURL   string `json:"external_url,omitempty"`
	// Counters may be absent from the provider payload; zero means unknown.
	FollowerCount  int64 `json:"follower_count,omitempty"`
	FollowingCount int64 `json:"following_count,omitempty"`
	MediaCount     int64 `json:"media_count,omitempty"`
	IsPrivate      bool  `json:"is_private"`
	IsVerified     bool  `json:"is_verified"`
}

// DiscoveredUser is a reduced public-search result. Private accounts are
// filtered out by the adapter and never reach this type.
type DiscoveredUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	ProfilePicURL string `json:"profile_pic_url"`
	FollowerCount int64  `json:"follower_count"`
	IsVerified    bool   `json:"is_verified"`
}

// Hashtag is a pass-through search result; it is not deeply processed.
type Hashtag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MediaCount int64  `json:"media_count"`
}
