package types

import "time"

// PostIdea is a generated content suggestion. The AI service does not supply
// an id, so one is assigned locally at creation time.
type PostIdea struct {
	ID        string   `json:"id"`
	IdeaTitle string   `json:"ideaTitle"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
}

// ScheduledPost is a PostIdea with a planned publication time. Identity is
// inherited from the idea's id, so a given idea can be scheduled at most once.
type ScheduledPost struct {
	PostIdea
	ScheduledAt time.Time `json:"scheduledAt"`
}
