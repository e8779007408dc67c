// Package analysis provides the adapter for the generative AI service. Each
// use case builds a prompt embedding capped caller data, requests a JSON
// response, validates it against a fixed schema, and decodes it into the
// matching report type. Any failure surfaces as a single AnalysisError: the
// caller's only recourse is offering the user a retry.
package analysis

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/instagrowth/internal/llm"
	"github.com/jonathan/instagrowth/internal/schemas"
)

// Data caps per use case. Fixed policy, not dynamic backoff: these bound
// prompt size and cost.
const (
	maxProfileCaptions    = 10
	maxCompetitorCaptions = 5
	maxBestTimePosts      = 50
	maxPerformancePosts   = 5
	maxCaptionSnippet     = 150
)

// Analyzer runs the analysis use cases against an injected llm.Client.
type Analyzer struct {
	client   llm.Client
	validate *validator.Validate
}

// NewAnalyzer returns an Analyzer backed by client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{
		client:   client,
		validate: validator.New(),
	}
}

// generate requests a JSON response for prompt, validates it against the
// named schema, and decodes it into out.
func (a *Analyzer) generate(ctx context.Context, useCase, schemaName, prompt string, out any) error {
	text, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return &AnalysisError{UseCase: useCase, Cause: err}
	}
	if err := schemas.Validate(schemaName, text); err != nil {
		return &AnalysisError{UseCase: useCase, Cause: err}
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &AnalysisError{UseCase: useCase, Cause: err}
	}
	return nil
}

// checkRanges applies struct-tag range validation to a decoded report.
func (a *Analyzer) checkRanges(useCase string, report any) error {
	if err := a.validate.Struct(report); err != nil {
		return &AnalysisError{UseCase: useCase, Cause: err}
	}
	return nil
}
