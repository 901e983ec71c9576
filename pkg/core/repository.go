package core

import "context"

// Repository persists the full set of annotations as a single unit.
// There is no incremental write: Save always replaces everything.
type Repository interface {
	// Load returns every persisted annotation. It returns ErrNotFound when
	// nothing was persisted yet and ErrCorrupt (wrapped) when the stored
	// content cannot be decoded.
	Load(ctx context.Context) ([]Annotation, error)

	// Save overwrites the persisted state with the given annotations.
	Save(ctx context.Context, annotations []Annotation) error
}
