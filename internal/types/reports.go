package types

// HashtagGroups is a strategic set of hashtags in three named categories.
type HashtagGroups struct {
	Niche     []string `json:"niche"`
	Broad     []string `json:"broad"`
	Community []string `json:"community"`
}

// ProfileAnalysis is the growth report for a single profile.
type ProfileAnalysis struct {
	ProfileOptimization []string      `json:"profile_optimization"`
	ContentStrategy     []string      `json:"content_strategy"`
	SuggestedHashtags   HashtagGroups `json:"suggested_hashtags"`
}

// CompetitorProfileAnalysis is the per-profile section of a CompetitorReport.
type CompetitorProfileAnalysis struct {
	Username      string   `json:"username"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	ContentThemes []string `json:"content_themes"`
}

// CompetitorReport compares up to three competitor profiles.
type CompetitorReport struct {
	Summary  string                      `json:"summary"`
	Profiles []CompetitorProfileAnalysis `json:"profiles"`
}

// HeatmapPoint is one cell of the posting-time heatmap.
// Day 0 is Sunday; hours are UTC.
type HeatmapPoint struct {
	Day             int `json:"day" validate:"min=0,max=6"`
	Hour            int `json:"hour" validate:"min=0,max=23"`
	EngagementScore int `json:"engagementScore" validate:"min=0,max=100"`
}

// BestTimeToPostReport holds the posting-time heatmap and recommendations.
type BestTimeToPostReport struct {
	HeatmapData     []HeatmapPoint `json:"heatmapData" validate:"dive"`
	Recommendations []string       `json:"recommendations"`
}

// Grid materializes the heatmap as a 7x24 day-by-hour table. Any day/hour
// combination absent from the response scores 0 (no activity evidence).
// Out-of-range points are ignored.
func (r *BestTimeToPostReport) Grid() [7][24]int {
	var grid [7][24]int
	for _, p := range r.HeatmapData {
		if p.Day < 0 || p.Day > 6 || p.Hour < 0 || p.Hour > 23 {
			continue
		}
		grid[p.Day][p.Hour] = p.EngagementScore
	}
	return grid
}

// PostPerformanceReport summarizes what is working in a user's top posts.
type PostPerformanceReport struct {
	WhatIsWorking []string `json:"what_is_working"`
	Suggestions   []string `json:"suggestions"`
}

// CollabAnalysisReport scores the collaboration potential of two profiles.
type CollabAnalysisReport struct {
	CompatibilityScore int      `json:"compatibility_score" validate:"min=0,max=100"`
	MatchVerdict       string   `json:"match_verdict"`
	AnalysisPoints     []string `json:"analysis_points"`
	CollaborationIdeas []string `json:"collaboration_ideas"`
}

// HookAnalysisReport scores the opening line of a post or Reel.
type HookAnalysisReport struct {
	HookScore         int      `json:"hook_score" validate:"min=0,max=100"`
	Verdict           string   `json:"verdict"`
	Analysis          string   `json:"analysis"`
	Suggestions       []string `json:"suggestions"`
	AlternativeStyles []string `json:"alternative_styles"`
}

// Score bands for display. The thresholds are fixed: a score of 80 or more
// is high, 60 or more medium, 40 or more low, anything else very low.
const (
	BandHigh    = "high"
	BandMedium  = "medium"
	BandLow     = "low"
	BandVeryLow = "very low"
)

// ScoreBand maps a 0-100 score onto its display band. Scores are opaque
// relative rankings from the remote model; banding is the only local
// interpretation applied to them.
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	case score >= 40:
		return BandLow
	default:
		return BandVeryLow
	}
}
