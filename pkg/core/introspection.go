package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Records        int        `json:"records"`
	DistinctTags   int        `json:"distinct_tags"`
	EmptyRecords   int        `json:"empty_records"`
	Loaded         bool       `json:"loaded"`
	LastLoad       Outcome    `json:"last_load"`
	LastSave       Outcome    `json:"last_save"`
	LastSavedAt    *time.Time `json:"last_saved_at,omitempty"`
	Saves          int        `json:"saves"`
	RepositoryType string     `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make(map[string]struct{})
	empty := 0
	for _, rec := range s.records {
		if rec.IsEmpty() {
			empty++
		}
		for _, t := range rec.Tags {
			tags[t] = struct{}{}
		}
	}

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return StoreState{
		Records:        len(s.records),
		DistinctTags:   len(tags),
		EmptyRecords:   empty,
		Loaded:         s.loaded,
		LastLoad:       s.lastLoad,
		LastSave:       s.lastSave,
		LastSavedAt:    s.lastSavedAt,
		Saves:          s.saves,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
