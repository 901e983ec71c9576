package fs

import (
	"time"

	"github.com/aretw0/notia/pkg/core"
)

// record is the on-disk shape of one annotation. Files written before tags
// existed have no "tags" field; it decodes to an empty set.
type record struct {
	Path      string   `json:"path"`
	Note      string   `json:"note"`
	Timestamp string   `json:"timestamp"`
	Tags      []string `json:"tags"`
}

func toRecord(a core.Annotation) record {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return record{
		Path:      a.Path,
		Note:      a.Note,
		Timestamp: a.Timestamp.UTC().Format(time.RFC3339Nano),
		Tags:      tags,
	}
}

// toAnnotation never fails: an unparsable timestamp becomes the zero time
// rather than invalidating the whole file.
func (r record) toAnnotation() core.Annotation {
	var ts time.Time
	if parsed, err := time.Parse(time.RFC3339Nano, r.Timestamp); err == nil {
		ts = parsed.UTC()
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return core.Annotation{
		Path:      r.Path,
		Note:      r.Note,
		Tags:      tags,
		Timestamp: ts,
	}
}
