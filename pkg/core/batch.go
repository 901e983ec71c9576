package core

import "context"

// Batch groups several mutations into one persisted unit of work.
// It is only valid inside the function passed to Store.Batch.
type Batch struct {
	s *Store
}

// Batch runs fn with the store locked and writes the mapping once when fn
// returns. A crash before that write loses every change made in fn.
func (s *Store) Batch(ctx context.Context, fn func(b *Batch)) Outcome {
	return s.mutate(ctx, func() { fn(&Batch{s: s}) })
}

// AddOrUpdateNote behaves like Store.AddOrUpdateNote without saving.
func (b *Batch) AddOrUpdateNote(path, text string) {
	b.s.setNote(path, text)
}

// ReplaceRecord behaves like Store.ReplaceRecord without saving.
func (b *Batch) ReplaceRecord(a Annotation) {
	if a.Path != "" {
		b.s.replace(a)
	}
}

// RemoveNote behaves like Store.RemoveNote without saving.
func (b *Batch) RemoveNote(path string) {
	delete(b.s.records, path)
}

// AddTag behaves like Store.AddTag without saving.
func (b *Batch) AddTag(path, tag string) {
	b.s.addTag(path, tag)
}

// RemoveTag behaves like Store.RemoveTag without saving.
func (b *Batch) RemoveTag(path, tag string) {
	b.s.removeTag(path, tag)
}

// ClearAll behaves like Store.ClearAll without saving.
func (b *Batch) ClearAll() {
	clear(b.s.records)
}

// GetNote reads through to the store, including changes made in the batch.
func (b *Batch) GetNote(path string) (Annotation, bool) {
	rec, ok := b.s.records[path]
	if !ok {
		return Annotation{}, false
	}
	return rec.Clone(), true
}
