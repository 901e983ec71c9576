// Package core holds the annotation model and the Store that keeps it
// consistent with its persisted form.
package core

import (
	"slices"
	"strings"
	"time"
)

// Annotation is the note and tag set attached to a single photo.
// Path is the unique key.
type Annotation struct {
	Path      string
	Note      string
	Tags      []string
	Timestamp time.Time
}

// HasTag reports whether tag is part of the annotation's tag set.
func (a Annotation) HasTag(tag string) bool {
	return slices.Contains(a.Tags, normalizeTag(tag))
}

// IsEmpty reports whether both the note and the tag set are empty.
func (a Annotation) IsEmpty() bool {
	return a.Note == "" && len(a.Tags) == 0
}

// Clone returns a copy that does not share the tag slice.
func (a Annotation) Clone() Annotation {
	c := a
	c.Tags = slices.Clone(a.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

// addTag appends tag if it is not already present.
// Returns false when nothing changed.
func (a *Annotation) addTag(tag string) bool {
	tag = normalizeTag(tag)
	if tag == "" || a.HasTag(tag) {
		return false
	}
	a.Tags = append(a.Tags, tag)
	return true
}

func (a *Annotation) removeTag(tag string) bool {
	tag = normalizeTag(tag)
	i := slices.Index(a.Tags, tag)
	if i < 0 {
		return false
	}
	a.Tags = slices.Delete(a.Tags, i, i+1)
	return true
}

// NormalizeTags trims every tag, drops empty ones and removes duplicates
// while keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = normalizeTag(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func normalizeTag(tag string) string {
	return strings.TrimSpace(tag)
}

// now is replaced in tests.
var now = func() time.Time {
	return time.Now().UTC()
}
