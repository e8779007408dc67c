// Package schedule persists the user's content calendar of scheduled post
// ideas.
package schedule

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jonathan/instagrowth/internal/store"
	"github.com/jonathan/instagrowth/internal/types"
)

// Service reads and writes the content calendar through a key-value store.
// Every mutation rewrites the full list, so concurrent writers through
// separate Services can lose updates; callers are expected to hold a single
// Service per process.
type Service struct {
	store store.Store
}

// NewService creates a Service backed by the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// List returns all scheduled posts ordered by scheduled time, earliest
// first. An absent calendar yields an empty list.
func (s *Service) List() ([]types.ScheduledPost, error) {
	posts, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ScheduledAt.Before(posts[j].ScheduledAt)
	})
	return posts, nil
}

// Schedule adds an idea to the calendar at the given time. Scheduling an
// idea that is already on the calendar is a no-op; the existing entry wins.
func (s *Service) Schedule(idea types.PostIdea, at time.Time) error {
	posts, err := s.load()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == idea.ID {
			return nil
		}
	}
	posts = append(posts, types.ScheduledPost{PostIdea: idea, ScheduledAt: at})
	return s.save(posts)
}

// Unschedule removes the entry with the given idea id. Removing an id that
// is not on the calendar is a no-op.
func (s *Service) Unschedule(id string) error {
	posts, err := s.load()
	if err != nil {
		return err
	}
	kept := posts[:0]
	for i := range posts {
		if posts[i].ID != id {
			kept = append(kept, posts[i])
		}
	}
	if len(kept) == len(posts) {
		return nil
	}
	return s.save(kept)
}

func (s *Service) load() ([]types.ScheduledPost, error) {
	value, ok, err := s.store.Get(store.KeyScheduledPosts)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar: %w", err)
	}
	if !ok || value == "" {
		return nil, nil
	}
	var posts []types.ScheduledPost
	if err := json.Unmarshal([]byte(value), &posts); err != nil {
		return nil, fmt.Errorf("failed to decode calendar: %w", err)
	}
	return posts, nil
}

func (s *Service) save(posts []types.ScheduledPost) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	if err := s.store.Set(store.KeyScheduledPosts, string(data)); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
