package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/instagrowth/internal/types"
)

// MockLLMClient implements llm.Client for testing.
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string) (string, error)
	LastPrompt       string
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt)
	}
	return "{}", nil
}

func (m *MockLLMClient) Model() string { return "mock-model" }
func (m *MockLLMClient) Close() error  { return nil }

func captionedMedia(n int) []types.MediaItem {
	media := make([]types.MediaItem, n)
	for i := range media {
		media[i] = types.MediaItem{
			ID:      fmt.Sprintf("m%d", i+1),
			Caption: &types.Caption{Text: fmt.Sprintf("caption-%d", i+1)},
			TakenAt: int64(1700000000 + i),
		}
	}
	return media
}

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		ID:             "42",
		Username:       "trailrunner",
		FullName:       "Trail Runner",
		Biography:      "Running ultras and reviewing gear",
		FollowerCount:  52000,
		FollowingCount: 300,
		MediaCount:     412,
	}
}

func TestProfileGrowth_Success(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{
				"profile_optimization": ["Add a clear CTA to the bio"],
				"content_strategy": ["Lean into race-day vlogs"],
				"suggested_hashtags": {"niche": ["#ultrarunning"], "broad": ["#running"], "community": ["#trailfam"]}
			}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	report, err := analyzer.ProfileGrowth(context.Background(), testProfile(), captionedMedia(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"Add a clear CTA to the bio"}, report.ProfileOptimization)
	assert.Equal(t, []string{"#ultrarunning"}, report.SuggestedHashtags.Niche)

	assert.Contains(t, mock.LastPrompt, "@trailrunner")
	assert.Contains(t, mock.LastPrompt, "52000")
}

func TestProfileGrowth_CapsCaptionsAtTen(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"profile_optimization": [], "content_strategy": [], "suggested_hashtags": {"niche": [], "broad": [], "community": []}}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.ProfileGrowth(context.Background(), testProfile(), captionedMedia(15))
	require.NoError(t, err)
	assert.Contains(t, mock.LastPrompt, "caption-10")
	assert.NotContains(t, mock.LastPrompt, "caption-11")
}

func TestProfileGrowth_TransportError(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("rate limit exceeded")
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.ProfileGrowth(context.Background(), testProfile(), nil)
	require.Error(t, err)

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, "profile growth", analysisErr.UseCase)
}

func TestProfileGrowth_NonConformingResponse(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"unexpected": true}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.ProfileGrowth(context.Background(), testProfile(), nil)
	require.Error(t, err)

	var analysisErr *AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestCompetitors_EmbedsEachSubjectCapped(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"summary": "close race", "profiles": [{"username": "a", "strengths": [], "weaknesses": [], "content_themes": []}]}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	subjects := []Subject{
		{Profile: &types.UserProfile{Username: "first"}, Media: captionedMedia(8)},
		{Profile: &types.UserProfile{Username: "second"}, Media: nil},
	}
	report, err := analyzer.Competitors(context.Background(), subjects)
	require.NoError(t, err)
	assert.Equal(t, "close race", report.Summary)

	assert.Contains(t, mock.LastPrompt, "@first")
	assert.Contains(t, mock.LastPrompt, "@second")
	assert.Contains(t, mock.LastPrompt, "caption-5")
	assert.NotContains(t, mock.LastPrompt, "caption-6")
	assert.Contains(t, mock.LastPrompt, "No captions available.")
}

func TestBestTimeToPost_CapsPostsAtFifty(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"heatmapData": [{"day": 2, "hour": 18, "engagementScore": 90}], "recommendations": ["Post Tuesday evenings"]}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	report, err := analyzer.BestTimeToPost(context.Background(), captionedMedia(60))
	require.NoError(t, err)
	assert.Equal(t, 90, report.Grid()[2][18])

	// Timestamps are 1700000000+i; the 51st post (index 50) must not appear.
	assert.Contains(t, mock.LastPrompt, "1700000049")
	assert.NotContains(t, mock.LastPrompt, "1700000050")
}

func TestBestTimeToPost_RejectsOutOfRangeCells(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"heatmapData": [{"day": 9, "hour": 3, "engagementScore": 50}], "recommendations": []}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.BestTimeToPost(context.Background(), captionedMedia(10))
	require.Error(t, err)

	var analysisErr *AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestPostPerformance_EmbedsTopFiveTruncated(t *testing.T) {
	media := []types.MediaItem{
		{ID: "top", LikeCount: 1000, Caption: &types.Caption{Text: strings.Repeat("x", 200)}},
		{ID: "p2", LikeCount: 500, Caption: &types.Caption{Text: "second"}},
		{ID: "p3", LikeCount: 400},
		{ID: "p4", LikeCount: 300, Caption: &types.Caption{Text: "fourth"}},
		{ID: "p5", LikeCount: 200, Caption: &types.Caption{Text: "fifth"}},
		{ID: "p6", LikeCount: 100, Caption: &types.Caption{Text: "left-out-caption"}},
	}
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"what_is_working": ["Long captions"], "suggestions": ["Post more Reels"]}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	report, err := analyzer.PostPerformance(context.Background(), media)
	require.NoError(t, err)
	assert.Equal(t, []string{"Long captions"}, report.WhatIsWorking)

	assert.NotContains(t, mock.LastPrompt, "left-out-caption")
	assert.NotContains(t, mock.LastPrompt, strings.Repeat("x", 151))
	assert.Contains(t, mock.LastPrompt, strings.Repeat("x", 150))
	assert.Contains(t, mock.LastPrompt, "No caption")
}

func TestPostPerformance_TruncatesOnRuneBoundary(t *testing.T) {
	media := []types.MediaItem{
		{ID: "p1", LikeCount: 10, Caption: &types.Caption{Text: strings.Repeat("é", 200)}},
	}
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"what_is_working": [], "suggestions": []}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.PostPerformance(context.Background(), media)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(mock.LastPrompt))
	assert.NotContains(t, mock.LastPrompt, "�")
	assert.Contains(t, mock.LastPrompt, strings.Repeat("é", 150))
	assert.NotContains(t, mock.LastPrompt, strings.Repeat("é", 151))
}

func TestCollab_Success(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{
				"compatibility_score": 84,
				"match_verdict": "Excellent Match",
				"analysis_points": ["Shared audience"],
				"collaboration_ideas": ["Joint giveaway"]
			}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	report, err := analyzer.Collab(context.Background(),
		&types.UserProfile{Username: "one", Biography: "bio one"},
		&types.UserProfile{Username: "two", Biography: "bio two"})
	require.NoError(t, err)
	assert.Equal(t, 84, report.CompatibilityScore)
	assert.Equal(t, types.BandHigh, types.ScoreBand(report.CompatibilityScore))

	assert.Contains(t, mock.LastPrompt, "@one")
	assert.Contains(t, mock.LastPrompt, "@two")
}

func TestHashtags_Success(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"niche": ["#sourdoughstarter"], "broad": ["#baking"], "community": ["#breadheads"]}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	groups, err := analyzer.Hashtags(context.Background(), "sourdough baking")
	require.NoError(t, err)
	assert.Equal(t, []string{"#sourdoughstarter"}, groups.Niche)
	assert.Contains(t, mock.LastPrompt, "sourdough baking")
}

func TestAnalyzeHook_IncludesStyleList(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{
				"hook_score": 55,
				"verdict": "Good Start",
				"analysis": "Clear but predictable.",
				"suggestions": ["Open with the payoff"],
				"alternative_styles": ["Curiosity Gap", "Bold Statement", "Question"]
			}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	report, err := analyzer.AnalyzeHook(context.Background(), "I ran 100 miles last week")
	require.NoError(t, err)
	assert.Equal(t, 55, report.HookScore)
	assert.Equal(t, types.BandVeryLow, types.ScoreBand(39))

	assert.Contains(t, mock.LastPrompt, "I ran 100 miles last week")
	assert.Contains(t, mock.LastPrompt, "Curiosity Gap")
	assert.Contains(t, mock.LastPrompt, "Direct Call to Action")
}

func TestGenerateHooks_Success(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `{"hooks": ["Stop doing this before your runs", "The 5am club is lying to you"]}`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	hooks, err := analyzer.GenerateHooks(context.Background(), "morning runs", "Bold Statement")
	require.NoError(t, err)
	assert.Len(t, hooks, 2)
	assert.Contains(t, mock.LastPrompt, "morning runs")
	assert.Contains(t, mock.LastPrompt, "Bold Statement")
}

func TestPostIdeas_AssignsUniqueIDs(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `[
				{"ideaTitle": "A", "caption": "a", "hashtags": ["#a"]},
				{"ideaTitle": "B", "caption": "b", "hashtags": ["#b"]}
			]`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	ideas, err := analyzer.PostIdeas(context.Background(), "street photography", 2)
	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.NotEmpty(t, ideas[0].ID)
	assert.NotEmpty(t, ideas[1].ID)
	assert.NotEqual(t, ideas[0].ID, ideas[1].ID)
	assert.Contains(t, mock.LastPrompt, "street photography")
}

func TestPostIdeas_MalformedJSON(t *testing.T) {
	mock := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string) (string, error) {
			return `not json at all`, nil
		},
	}
	analyzer := NewAnalyzer(mock)

	_, err := analyzer.PostIdeas(context.Background(), "anything", 1)
	require.Error(t, err)

	var analysisErr *AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}
