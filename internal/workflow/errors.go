package workflow

import "fmt"

// PrivateProfileError reports that a profile exists but is private and
// therefore ineligible for media fetches and analysis.
type PrivateProfileError struct {
	Username string
}

func (e *PrivateProfileError) Error() string {
	return fmt.Sprintf("@%s is a private account and cannot be analyzed", e.Username)
}

// InsufficientDataError reports that a profile exists but does not meet a
// workflow's minimum-sample gate.
type InsufficientDataError struct {
	Username string
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("@%s has %d posts but at least %d are required for this analysis", e.Username, e.Got, e.Required)
}

// NoDataError reports that a fan-out fetch produced no usable subjects at
// all.
type NoDataError struct {
	Message string
}

func (e *NoDataError) Error() string {
	return e.Message
}
