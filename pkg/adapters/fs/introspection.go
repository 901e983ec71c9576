package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path       string     `json:"path"`
	Mode       string     `json:"mode"`
	Records    int        `json:"records"`
	LastLoadAt *time.Time `json:"last_load_at,omitempty"`
	LastSaveAt *time.Time `json:"last_save_at,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:       r.Path,
		Mode:       r.config.Perm.String(),
		Records:    r.records,
		LastLoadAt: r.lastLoadAt,
		LastSaveAt: r.lastSaveAt,
		LastError:  r.lastError,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "json-file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
