package instagram

import "fmt"

// MissingCredentialError means no provider credential is stored. It is
// returned before any network I/O is attempted; the fix is configuration,
// not retry.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return "no RapidAPI credential stored: run 'instagrowth configure' first"
}

// NotFoundError means the queried entity does not exist or the provider
// payload lacked the expected nested object for it.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("user %q not found", e.Username)
	}
	return "requested entity not found"
}

// ProviderError represents an upstream failure: a non-2xx response or a
// transport error. Message carries the provider's error body message when
// present, else the transport status text.
type ProviderError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError means the provider returned success but a shape the
// adapter could not decode.
type MalformedResponseError struct {
	Endpoint string
	Cause    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}
