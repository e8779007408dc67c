// Package workflow sequences the per-feature pipelines: resolve a query
// through the data provider, compute local metrics, request generative
// analysis, and publish a result or error for presentation.
package workflow

import "sync"

// Phase is the lifecycle state of a controller.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseReady     Phase = "ready"
	PhaseAnalyzing Phase = "analyzing"
	PhaseError     Phase = "error"
)

// session tracks the lifecycle of one controller. Every query increments a
// generation counter; a query may only publish its outcome while it is still
// the newest one, so a slow response can never overwrite the result of a
// later query.
type session struct {
	mu    sync.Mutex
	gen   uint64
	phase Phase
	err   error
}

// begin starts a new generation in the given phase, clears the previous
// error, and runs reset (which should clear the controller's results) under
// the lock. It returns the token the query must present to publish.
func (s *session) begin(phase Phase, reset func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.phase = phase
	s.err = nil
	if reset != nil {
		reset()
	}
	return s.gen
}

// publish commits a successful outcome. set runs under the lock and should
// store the controller's results. Returns false if the token is stale, in
// which case nothing is stored.
func (s *session) publish(token uint64, phase Phase, set func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.gen {
		return false
	}
	if set != nil {
		set()
	}
	s.phase = phase
	s.err = nil
	return true
}

// fail records a terminal error for the query, unless the token is stale.
// It returns err either way so callers can `return s.fail(token, err)`.
func (s *session) fail(token uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == s.gen {
		s.phase = PhaseError
		s.err = err
	}
	return err
}

// state returns the current phase and error.
func (s *session) state() (Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == "" {
		return PhaseIdle, nil
	}
	return s.phase, s.err
}
