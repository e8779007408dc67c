// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/instagrowth/internal/insights"
	"github.com/jonathan/instagrowth/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// dayNames indexes the posting-time grid; the week starts on Sunday.
var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Printer renders reports and media listings to a writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on rune boundaries
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		return string([]rune(s)[:n-3]) + "..."
	}
	return s
}

// PrintProfile outputs a profile card with its locally computed engagement
// rate.
func (p *Printer) PrintProfile(profile *types.UserProfile, engagementRate float64) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Username:   @%s\n", profile.Username))
	if profile.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.FullName))
	}
	if profile.Biography != "" {
		sb.WriteString(fmt.Sprintf("Bio:        %s\n", truncate(profile.Biography, 44)))
	}
	sb.WriteString(fmt.Sprintf("Followers:  %d\n", profile.FollowerCount))
	sb.WriteString(fmt.Sprintf("Following:  %d\n", profile.FollowingCount))
	sb.WriteString(fmt.Sprintf("Posts:      %d\n", profile.MediaCount))
	if profile.IsVerified {
		sb.WriteString("Verified:   yes\n")
	}
	sb.WriteString(fmt.Sprintf("Engagement: %.2f%%", engagementRate))

	p.printBox("PROFILE", sb.String())
}

// PrintMediaGrid outputs a media listing. Items without a renderable image
// are dropped without comment.
func (p *Printer) PrintMediaGrid(title string, media []types.MediaItem) {
	items := insights.Renderable(media)
	if len(items) == 0 {
		p.printBox(title, "No posts to show.")
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		sb.WriteString(fmt.Sprintf("%-8s %6d likes %5d comments\n",
			types.MediaTypeLabel(item.MediaType), item.LikeCount, item.CommentCount))
		if caption := item.CaptionText(); caption != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", truncate(caption, 50)))
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more posts", len(items)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileAnalysis outputs the growth report.
func (p *Printer) PrintProfileAnalysis(report *types.ProfileAnalysis) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Profile Optimization:\n")
	for _, tip := range report.ProfileOptimization {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(tip, 50)))
	}
	sb.WriteString("\nContent Strategy:\n")
	for _, tip := range report.ContentStrategy {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(tip, 50)))
	}

	p.printBox("GROWTH ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintHashtagGroups(&report.SuggestedHashtags)
}

// PrintHashtagGroups outputs a strategic hashtag set.
func (p *Printer) PrintHashtagGroups(groups *types.HashtagGroups) {
	if groups == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Niche:     %s\n", truncate(strings.Join(groups.Niche, " "), 46)))
	sb.WriteString(fmt.Sprintf("Broad:     %s\n", truncate(strings.Join(groups.Broad, " "), 46)))
	sb.WriteString(fmt.Sprintf("Community: %s", truncate(strings.Join(groups.Community, " "), 46)))

	p.printBox("HASHTAGS", sb.String())
}

// PrintCompetitorReport outputs the comparative report.
func (p *Printer) PrintCompetitorReport(report *types.CompetitorReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", report.Summary))
	for _, profile := range report.Profiles {
		sb.WriteString(fmt.Sprintf("\n@%s\n", profile.Username))
		sb.WriteString(fmt.Sprintf("  Strengths:  %s\n", truncate(strings.Join(profile.Strengths, "; "), 42)))
		sb.WriteString(fmt.Sprintf("  Weaknesses: %s\n", truncate(strings.Join(profile.Weaknesses, "; "), 42)))
		sb.WriteString(fmt.Sprintf("  Themes:     %s\n", truncate(strings.Join(profile.ContentThemes, "; "), 42)))
	}

	p.printBox("COMPETITOR ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHeatmap outputs the 7x24 posting-time grid. Cells are shaded by
// score band; hours absent from the report render as no-activity cells.
func (p *Printer) PrintHeatmap(report *types.BestTimeToPostReport) {
	if report == nil {
		return
	}
	grid := report.Grid()

	var sb strings.Builder
	sb.WriteString("     0     6     12    18   23\n")
	for day := 0; day < 7; day++ {
		sb.WriteString(fmt.Sprintf("%s  ", dayNames[day]))
		for hour := 0; hour < 24; hour++ {
			sb.WriteString(cellGlyph(grid[day][hour]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n# high  + medium  - low  . quiet\n")

	sb.WriteString("\nRecommendations:\n")
	for _, rec := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(rec, 50)))
	}

	p.printBox("BEST TIME TO POST", strings.TrimSuffix(sb.String(), "\n"))
}

func cellGlyph(score int) string {
	switch types.ScoreBand(score) {
	case types.BandHigh:
		return "#"
	case types.BandMedium:
		return "+"
	case types.BandLow:
		return "-"
	default:
		return "."
	}
}

// PrintPerformanceReport outputs the what's-working report.
func (p *Printer) PrintPerformanceReport(report *types.PostPerformanceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("What is working:\n")
	for _, item := range report.WhatIsWorking {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(item, 50)))
	}
	sb.WriteString("\nSuggestions:\n")
	for _, item := range report.Suggestions {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(item, 50)))
	}

	p.printBox("POST PERFORMANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCollabReport outputs the pairwise collaboration report with the
// banded compatibility score.
func (p *Printer) PrintCollabReport(username1, username2 string, report *types.CollabAnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("@%s × @%s\n\n", username1, username2))
	sb.WriteString(fmt.Sprintf("Score:   %d/100 (%s)\n", report.CompatibilityScore, types.ScoreBand(report.CompatibilityScore)))
	sb.WriteString(fmt.Sprintf("Verdict: %s\n", report.MatchVerdict))
	sb.WriteString("\nAnalysis:\n")
	for _, point := range report.AnalysisPoints {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(point, 50)))
	}
	sb.WriteString("\nIdeas:\n")
	for _, idea := range report.CollaborationIdeas {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(idea, 50)))
	}

	p.printBox("COLLAB MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHookAnalysis outputs the hook score report.
func (p *Printer) PrintHookAnalysis(report *types.HookAnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %d/100 (%s)\n", report.HookScore, types.ScoreBand(report.HookScore)))
	sb.WriteString(fmt.Sprintf("Verdict: %s\n\n", report.Verdict))
	sb.WriteString(fmt.Sprintf("%s\n", truncate(report.Analysis, 54)))
	sb.WriteString("\nSuggestions:\n")
	for _, s := range report.Suggestions {
		sb.WriteString(fmt.Sprintf("  • %s\n", truncate(s, 50)))
	}
	if len(report.AlternativeStyles) > 0 {
		sb.WriteString(fmt.Sprintf("\nTry these styles: %s\n", strings.Join(report.AlternativeStyles, ", ")))
	}

	p.printBox("HOOK ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHooks outputs generated hooks.
func (p *Printer) PrintHooks(hooks []string) {
	if len(hooks) == 0 {
		return
	}

	var sb strings.Builder
	for i, hook := range hooks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, truncate(hook, 52)))
	}

	p.printBox("HOOKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIdeas outputs generated post ideas with their ids, which the user
// needs to schedule an idea onto the calendar.
func (p *Printer) PrintIdeas(ideas []types.PostIdea) {
	if len(ideas) == 0 {
		return
	}

	var sb strings.Builder
	for i, idea := range ideas {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, truncate(idea.IdeaTitle, 50)))
		sb.WriteString(fmt.Sprintf("   id: %s\n", idea.ID))
		sb.WriteString(fmt.Sprintf("   %s\n", truncate(idea.Caption, 50)))
		sb.WriteString(fmt.Sprintf("   %s\n", truncate(strings.Join(idea.Hashtags, " "), 50)))
		if i < len(ideas)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("POST IDEAS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiscoveredUsers outputs an influencer search result.
func (p *Printer) PrintDiscoveredUsers(users []types.DiscoveredUser) {
	if len(users) == 0 {
		p.printBox("DISCOVERED ACCOUNTS", "No public accounts found.")
		return
	}

	var sb strings.Builder
	for i, user := range users {
		verified := ""
		if user.IsVerified {
			verified = " ✓"
		}
		sb.WriteString(fmt.Sprintf("@%s%s\n", user.Username, verified))
		if user.FullName != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", truncate(user.FullName, 48)))
		}
		if i < len(users)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DISCOVERED ACCOUNTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCalendar outputs the scheduled-post list in its stored order.
func (p *Printer) PrintCalendar(posts []types.ScheduledPost) {
	if len(posts) == 0 {
		p.printBox("CONTENT CALENDAR", "Nothing scheduled.")
		return
	}

	var sb strings.Builder
	for i, post := range posts {
		sb.WriteString(fmt.Sprintf("%s  %s\n", post.ScheduledAt.Format(time.RFC1123), truncate(post.IdeaTitle, 24)))
		sb.WriteString(fmt.Sprintf("  id: %s\n", post.ID))
		if i < len(posts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTENT CALENDAR", strings.TrimSuffix(sb.String(), "\n"))
}
