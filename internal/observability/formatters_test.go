package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/instagrowth/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.UserProfile{
		Username:       "trailrunner",
		FullName:       "Trail Runner",
		Biography:      "Running ultras",
		FollowerCount:  52000,
		FollowingCount: 300,
		MediaCount:     412,
		IsVerified:     true,
	}

	p.PrintProfile(profile, 4.37)
	output := buf.String()

	assert.Contains(t, output, "PROFILE")
	assert.Contains(t, output, "@trailrunner")
	assert.Contains(t, output, "52000")
	assert.Contains(t, output, "4.37%")
	assert.Contains(t, output, "Verified:   yes")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil, 0)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_MultiByteBioStaysValidUTF8(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.UserProfile{
		Username:  "läufer",
		Biography: strings.Repeat("日本語のバイオ ", 20),
	}

	p.PrintProfile(profile, 0)
	output := buf.String()

	assert.True(t, utf8.ValidString(output))
	assert.NotContains(t, output, "�")
}

func TestPrintMediaGrid_DropsUnrenderableItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	media := []types.MediaItem{
		{
			MediaType:     types.MediaTypePhoto,
			LikeCount:     120,
			Caption:       &types.Caption{Text: "race day"},
			ImageVersions: &types.ImageVersions2{Candidates: []types.ImageVersion{{URL: "https://cdn/a.jpg"}}},
		},
		{MediaType: types.MediaTypePhoto, LikeCount: 999, Caption: &types.Caption{Text: "no image here"}},
	}

	p.PrintMediaGrid("POSTS", media)
	output := buf.String()

	assert.Contains(t, output, "race day")
	assert.NotContains(t, output, "no image here")
}

func TestPrintMediaGrid_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMediaGrid("POSTS", nil)

	assert.Contains(t, buf.String(), "No posts to show.")
}

func TestPrintProfileAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ProfileAnalysis{
		ProfileOptimization: []string{"Add a CTA to the bio"},
		ContentStrategy:     []string{"Post more Reels"},
		SuggestedHashtags: types.HashtagGroups{
			Niche: []string{"#ultrarunning"},
			Broad: []string{"#running"},
		},
	}

	p.PrintProfileAnalysis(report)
	output := buf.String()

	assert.Contains(t, output, "GROWTH ANALYSIS")
	assert.Contains(t, output, "Add a CTA to the bio")
	assert.Contains(t, output, "Post more Reels")
	assert.Contains(t, output, "#ultrarunning")
}

func TestPrintHeatmap_BandsAndAbsentCells(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.BestTimeToPostReport{
		HeatmapData: []types.HeatmapPoint{
			{Day: 2, Hour: 18, EngagementScore: 95},
			{Day: 2, Hour: 19, EngagementScore: 61},
		},
		Recommendations: []string{"Post Tuesday evenings"},
	}

	p.PrintHeatmap(report)
	output := buf.String()

	assert.Contains(t, output, "BEST TIME TO POST")
	assert.Contains(t, output, "Post Tuesday evenings")
	// High cell at Tue 18:00 followed by the medium cell at 19:00,
	// surrounded by quiet cells.
	assert.Contains(t, output, ".#+.")
}

func TestPrintCollabReport_BandsScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.CollabAnalysisReport{
		CompatibilityScore: 84,
		MatchVerdict:       "Excellent Match",
		AnalysisPoints:     []string{"Shared audience"},
		CollaborationIdeas: []string{"Joint giveaway"},
	}

	p.PrintCollabReport("one", "two", report)
	output := buf.String()

	assert.Contains(t, output, "84/100 (high)")
	assert.Contains(t, output, "Excellent Match")
	assert.Contains(t, output, "Joint giveaway")
}

func TestPrintHookAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.HookAnalysisReport{
		HookScore:         45,
		Verdict:           "Needs Improvement",
		Analysis:          "Too vague.",
		Suggestions:       []string{"Name the payoff"},
		AlternativeStyles: []string{"Question"},
	}

	p.PrintHookAnalysis(report)
	output := buf.String()

	assert.Contains(t, output, "45/100 (low)")
	assert.Contains(t, output, "Needs Improvement")
	assert.Contains(t, output, "Question")
}

func TestPrintIdeas_ShowsIDs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ideas := []types.PostIdea{
		{ID: "idea-1", IdeaTitle: "Gear review", Caption: "My favorite shoes", Hashtags: []string{"#gear"}},
	}

	p.PrintIdeas(ideas)
	output := buf.String()

	assert.Contains(t, output, "POST IDEAS")
	assert.Contains(t, output, "id: idea-1")
	assert.Contains(t, output, "Gear review")
}

func TestPrintCalendar(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	posts := []types.ScheduledPost{
		{
			PostIdea:    types.PostIdea{ID: "idea-1", IdeaTitle: "Gear review"},
			ScheduledAt: time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC),
		},
	}

	p.PrintCalendar(posts)
	output := buf.String()

	assert.Contains(t, output, "CONTENT CALENDAR")
	assert.Contains(t, output, "Gear review")
	assert.Contains(t, output, "id: idea-1")
}

func TestPrintCalendar_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCalendar(nil)

	assert.Contains(t, buf.String(), "Nothing scheduled.")
}

func TestPrintDiscoveredUsers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	users := []types.DiscoveredUser{
		{Username: "trailqueen", FullName: "Trail Queen", IsVerified: true},
	}

	p.PrintDiscoveredUsers(users)
	output := buf.String()

	assert.Contains(t, output, "@trailqueen")
	assert.Contains(t, output, "Trail Queen")
}
