package workflow

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/instagrowth/internal/analysis"
	"github.com/jonathan/instagrowth/internal/types"
)

const maxCompetitors = 3

// CompetitorAnalyzer produces the comparative report over fetched subjects.
type CompetitorAnalyzer interface {
	Competitors(ctx context.Context, subjects []analysis.Subject) (*types.CompetitorReport, error)
}

// SubjectOutcome records the fetch result for one requested username. A
// failed or private subject carries Err and a nil Subject.
type SubjectOutcome struct {
	Username string
	Subject  *analysis.Subject
	Err      error
}

// CompetitorResult is the published outcome of a competitor analysis.
type CompetitorResult struct {
	Outcomes []SubjectOutcome
	Report   *types.CompetitorReport
}

// CompetitorController compares up to three competitor profiles. Subjects
// are fetched concurrently; individual failures are tolerated and the
// report is built from whatever subset succeeded.
type CompetitorController struct {
	source   ProfileSource
	feed     FeedSource
	analyzer CompetitorAnalyzer

	session
	result *CompetitorResult
}

func NewCompetitorController(source ProfileSource, feed FeedSource, analyzer CompetitorAnalyzer) *CompetitorController {
	return &CompetitorController{source: source, feed: feed, analyzer: analyzer}
}

// Analyze fetches 1-3 usernames concurrently and requests a comparative
// report over the subjects that resolved. It fails only when every fetch
// failed.
func (c *CompetitorController) Analyze(ctx context.Context, usernames []string) (*CompetitorResult, error) {
	if len(usernames) == 0 || len(usernames) > maxCompetitors {
		return nil, fmt.Errorf("competitor analysis takes between 1 and %d usernames, got %d", maxCompetitors, len(usernames))
	}

	token := c.begin(PhaseLoading, func() { c.result = nil })

	outcomes := make([]SubjectOutcome, len(usernames))
	var group errgroup.Group
	for i, username := range usernames {
		group.Go(func() error {
			outcomes[i] = c.fetchSubject(ctx, username)
			return nil
		})
	}
	group.Wait() //nolint:errcheck // closures never return an error

	subjects := make([]analysis.Subject, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			log.Warn().Str("username", outcome.Username).Err(outcome.Err).Msg("skipping competitor")
			continue
		}
		subjects = append(subjects, *outcome.Subject)
	}
	if len(subjects) == 0 {
		return nil, c.fail(token, &NoDataError{Message: "could not fetch data for any of the requested profiles"})
	}

	// Largest account first, for the prompt and the rendered report alike.
	sort.SliceStable(subjects, func(i, j int) bool {
		return subjects[i].Profile.FollowerCount > subjects[j].Profile.FollowerCount
	})

	c.publish(token, PhaseAnalyzing, nil)

	report, err := c.analyzer.Competitors(ctx, subjects)
	if err != nil {
		return nil, c.fail(token, err)
	}

	result := &CompetitorResult{Outcomes: outcomes, Report: report}
	c.publish(token, PhaseReady, func() { c.result = result })
	return result, nil
}

// fetchSubject resolves one username to a subject. Private profiles count
// as failures here so they never reach the analysis prompt.
func (c *CompetitorController) fetchSubject(ctx context.Context, username string) SubjectOutcome {
	profile, err := c.source.SearchUser(ctx, username)
	if err != nil {
		return SubjectOutcome{Username: username, Err: err}
	}
	if profile.IsPrivate {
		return SubjectOutcome{Username: username, Err: &PrivateProfileError{Username: profile.Username}}
	}
	media, err := c.feed.GetUserMedia(ctx, profile.ID)
	if err != nil {
		return SubjectOutcome{Username: username, Err: err}
	}
	return SubjectOutcome{Username: username, Subject: &analysis.Subject{Profile: profile, Media: media}}
}

// Snapshot returns the current lifecycle state and result.
func (c *CompetitorController) Snapshot() (Phase, *CompetitorResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	phase := c.phase
	if phase == "" {
		phase = PhaseIdle
	}
	return phase, c.result, c.err
}
