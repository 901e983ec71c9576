// Package fs persists annotations as a single JSON document on the local
// filesystem.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/notia/pkg/core"
)

// DefaultFileMode is used when Config.Perm is zero.
const DefaultFileMode os.FileMode = 0644

// Config holds the configuration for the file repository.
type Config struct {
	Path   string      // e.g. ~/.notia_notes.json
	Perm   os.FileMode // mode of the written file
	Logger *slog.Logger
}

// Repository implements core.Repository with one JSON array file that is
// rewritten in full on every Save.
type Repository struct {
	Path   string
	config Config

	mu         sync.RWMutex
	lastLoadAt *time.Time
	lastSaveAt *time.Time
	lastError  string
	records    int
}

// NewRepository creates a file repository. The file is not touched until
// Load or Save is called.
func NewRepository(config Config) *Repository {
	if config.Perm == 0 {
		config.Perm = DefaultFileMode
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Load reads and decodes the file. It returns core.ErrNotFound when the file
// does not exist and an error wrapping core.ErrCorrupt when the content is
// not a JSON array of annotation records.
func (r *Repository) Load(ctx context.Context) ([]core.Annotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		r.recordLoad(0, nil)
		return nil, core.ErrNotFound
	}
	if err != nil {
		err = fmt.Errorf("failed to read %s: %w", r.Path, err)
		r.recordLoad(0, err)
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		err = fmt.Errorf("%w: %s: %w", core.ErrCorrupt, r.Path, err)
		r.recordLoad(0, err)
		return nil, err
	}

	annotations := make([]core.Annotation, 0, len(records))
	for _, rec := range records {
		annotations = append(annotations, rec.toAnnotation())
	}

	r.config.Logger.Debug("annotations file read", "path", r.Path, "records", len(annotations))
	r.recordLoad(len(annotations), nil)
	return annotations, nil
}

// Save encodes annotations in the given order and replaces the file
// atomically.
func (r *Repository) Save(ctx context.Context, annotations []core.Annotation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make([]record, 0, len(annotations))
	for _, a := range annotations {
		records = append(records, toRecord(a))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		err = fmt.Errorf("failed to encode annotations: %w", err)
		r.recordSave(0, err)
		return err
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.Path, data, r.config.Perm); err != nil {
		r.recordSave(0, err)
		return err
	}

	r.config.Logger.Debug("annotations file written", "path", r.Path, "records", len(records))
	r.recordSave(len(records), nil)
	return nil
}

func (r *Repository) recordLoad(n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := time.Now()
	r.lastLoadAt = &t
	r.records = n
	r.lastError = errString(err)
}

func (r *Repository) recordSave(n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastError = errString(err)
	if err != nil {
		return
	}
	t := time.Now()
	r.lastSaveAt = &t
	r.records = n
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

var _ core.Repository = (*Repository)(nil)
