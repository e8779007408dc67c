package analysis

import "fmt"

// AnalysisError represents any failure of an analysis use case: transport,
// non-conforming response, or parse error. It is deliberately coarse.
type AnalysisError struct {
	UseCase string
	Cause   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("failed to generate %s analysis: %v", e.UseCase, e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
