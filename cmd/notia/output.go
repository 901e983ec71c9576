package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/notia"
	"github.com/aretw0/notia/pkg/core"
)

// annotationView is the JSON shape printed by --json outputs.
type annotationView struct {
	Path      string    `json:"path"`
	Note      string    `json:"note"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

func viewOf(a notia.Annotation) annotationView {
	return annotationView{Path: a.Path, Note: a.Note, Tags: a.Tags, Timestamp: a.Timestamp}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// absPath resolves a photo argument to the absolute key the store uses.
func absPath(arg string) string {
	if abs, err := filepath.Abs(arg); err == nil {
		return abs
	}
	return arg
}

// checkSaved turns a failed write into a command error: the process is
// about to exit, so the in-memory copy would be lost.
func checkSaved(out core.Outcome) error {
	if out == core.OutcomeWriteFailed {
		return fmt.Errorf("changes could not be written to the notes file")
	}
	return nil
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ", ") + "]"
}
