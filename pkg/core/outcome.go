package core

// Outcome reports how a load or save went. It is informational only:
// the Store always continues with its best in-memory state.
type Outcome int

const (
	// OutcomeOK means the operation completed (a missing file on load
	// counts as OK with an empty store).
	OutcomeOK Outcome = iota
	// OutcomeRecovered means persisted state was unreadable and the store
	// started empty instead.
	OutcomeRecovered
	// OutcomeWriteFailed means the in-memory state changed but could not
	// be written. It will be written again on the next mutation.
	OutcomeWriteFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeRecovered:
		return "recovered"
	case OutcomeWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// MarshalText lets Outcome show up by name in JSON state dumps.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
