package core

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"
)

// Store is the in-memory, file-backed mapping from photo path to Annotation.
//
// Every mutating call is its own unit of work: the mapping is changed and
// then the whole mapping is written through the Repository. Persistence
// faults are logged and reported as an Outcome, never returned as errors.
//
// There is no cross-process locking. Two processes sharing the same file
// race and the last Save wins.
type Store struct {
	repo   Repository
	logger *slog.Logger

	mu          sync.RWMutex
	records     map[string]*Annotation
	loaded      bool
	lastLoad    Outcome
	lastSave    Outcome
	lastSavedAt *time.Time
	saves       int
}

// NewStore creates an empty Store backed by repo. Call Load to read the
// persisted state; a Store that was never loaded loads before its first write.
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		repo:    repo,
		logger:  logger,
		records: make(map[string]*Annotation),
	}
}

// Load replaces the in-memory mapping with the persisted one.
// A missing file yields an empty store and OutcomeOK. Unreadable or corrupt
// content yields an empty store and OutcomeRecovered. A load interrupted by
// ctx changes nothing and reports OutcomeOK; the store then loads again
// before its next write.
func (s *Store) Load(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, false)
}

// loadLocked reads the repository into the mapping. With keep set, records
// already in memory take precedence over persisted ones.
func (s *Store) loadLocked(ctx context.Context, keep bool) Outcome {
	annotations, err := s.repo.Load(ctx)
	if isInterrupted(err) {
		s.logger.Debug("annotation load interrupted, keeping current state", "error", err)
		return OutcomeOK
	}

	if !keep {
		s.records = make(map[string]*Annotation)
	}
	s.loaded = true

	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Debug("no annotations file, starting empty")
		s.lastLoad = OutcomeOK
		return s.lastLoad
	case err != nil:
		s.logger.Warn("discarding unreadable annotations", "error", err)
		s.lastLoad = OutcomeRecovered
		return s.lastLoad
	}

	records := make(map[string]*Annotation, len(annotations))
	for _, a := range annotations {
		if a.Path == "" {
			s.logger.Debug("skipping annotation without path")
			continue
		}
		rec := a.Clone()
		rec.Tags = NormalizeTags(rec.Tags)
		// Later records for the same path win.
		records[rec.Path] = &rec
	}
	if keep {
		maps.Copy(records, s.records)
	}
	s.records = records

	s.logger.Debug("annotations loaded", "count", len(s.records))
	s.lastLoad = OutcomeOK
	return s.lastLoad
}

// ensureLoadedLocked loads persisted records before the first write so that
// a store which was never loaded cannot overwrite them.
func (s *Store) ensureLoadedLocked(ctx context.Context) bool {
	if !s.loaded {
		s.loadLocked(ctx, true)
	}
	return s.loaded
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Save writes the full mapping. A failed write leaves memory untouched and
// is not retried until the next mutation.
func (s *Store) Save(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

// Flush is Save under the name batching callers expect.
func (s *Store) Flush(ctx context.Context) Outcome {
	return s.Save(ctx)
}

func (s *Store) saveLocked(ctx context.Context) Outcome {
	if !s.ensureLoadedLocked(ctx) {
		s.logger.Warn("not persisting annotations, persisted state was never loaded")
		s.lastSave = OutcomeWriteFailed
		return s.lastSave
	}
	if err := s.repo.Save(ctx, s.snapshotLocked()); err != nil {
		s.logger.Warn("failed to persist annotations", "error", err)
		s.lastSave = OutcomeWriteFailed
		return s.lastSave
	}
	t := now()
	s.lastSavedAt = &t
	s.saves++
	s.lastSave = OutcomeOK
	return s.lastSave
}

// snapshotLocked returns copies of all records ordered by path.
func (s *Store) snapshotLocked() []Annotation {
	out := make([]Annotation, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	slices.SortFunc(out, func(a, b Annotation) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return out
}

// mutate applies fn under the write lock and persists the result.
func (s *Store) mutate(ctx context.Context, fn func()) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	fn()
	return s.saveLocked(ctx)
}

// AddOrUpdateNote sets the note text for path and refreshes its timestamp.
// Tags of an existing record are kept; note updates never touch tags.
func (s *Store) AddOrUpdateNote(ctx context.Context, path, text string) Outcome {
	return s.mutate(ctx, func() { s.setNote(path, text) })
}

// ReplaceRecord stores a as the whole record for a.Path, tags included.
// A zero timestamp is set to now. Records without a path are ignored.
func (s *Store) ReplaceRecord(ctx context.Context, a Annotation) Outcome {
	if a.Path == "" {
		s.logger.Debug("ignoring record without path")
		return OutcomeOK
	}
	return s.mutate(ctx, func() { s.replace(a) })
}

// GetNote returns a copy of the record for path.
func (s *Store) GetNote(path string) (Annotation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[path]
	if !ok {
		return Annotation{}, false
	}
	return rec.Clone(), true
}

// RemoveNote deletes the record for path. Absent paths are a no-op.
func (s *Store) RemoveNote(ctx context.Context, path string) Outcome {
	return s.mutate(ctx, func() { delete(s.records, path) })
}

// AddTag adds tag to the record for path, creating the record when needed.
// Adding a tag that is already present changes nothing. Blank tags are
// ignored.
func (s *Store) AddTag(ctx context.Context, path, tag string) Outcome {
	return s.mutate(ctx, func() { s.addTag(path, tag) })
}

// RemoveTag removes tag from the record for path. Unknown paths and tags
// are a no-op.
func (s *Store) RemoveTag(ctx context.Context, path, tag string) Outcome {
	return s.mutate(ctx, func() { s.removeTag(path, tag) })
}

// GetTags returns the tags of path in insertion order, or an empty slice.
func (s *Store) GetTags(path string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[path]
	if !ok {
		return []string{}
	}
	return rec.Clone().Tags
}

// ClearAll removes every record.
func (s *Store) ClearAll(ctx context.Context) Outcome {
	return s.mutate(ctx, func() { clear(s.records) })
}

// All returns copies of every record ordered by path.
func (s *Store) All() []Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) setNote(path, text string) {
	rec, ok := s.records[path]
	if !ok {
		rec = &Annotation{Path: path, Tags: []string{}}
		s.records[path] = rec
	}
	rec.Note = text
	rec.Timestamp = now()
}

func (s *Store) replace(a Annotation) {
	rec := a.Clone()
	rec.Tags = NormalizeTags(rec.Tags)
	if rec.Timestamp.IsZero() {
		rec.Timestamp = now()
	}
	s.records[rec.Path] = &rec
}

func (s *Store) addTag(path, tag string) {
	if normalizeTag(tag) == "" {
		return
	}
	rec, ok := s.records[path]
	if !ok {
		rec = &Annotation{Path: path, Tags: []string{}, Timestamp: now()}
		s.records[path] = rec
	}
	rec.addTag(tag)
}

func (s *Store) removeTag(path, tag string) {
	if rec, ok := s.records[path]; ok {
		rec.removeTag(tag)
	}
}
