package snapshot

import (
	"encoding/json"
	"time"
)

// SchemaVersion is embedded in every stored snapshot. Restores of any
// other version are discarded rather than migrated; snapshots are
// short-lived convenience state, not durable data.
const SchemaVersion = 1

// State is the terminal display state a page was left in.
type State string

const (
	StateIdle   State = "idle"
	StateResult State = "result"
	StateError  State = "error"
	StateSample State = "sample"
)

// PageSnapshot is the serialized per-page UI state: the raw form inputs
// plus the last rendered outcome. Result holds the backend response
// verbatim so a restore replays the exact payload through the same
// render path as a live submission.
type PageSnapshot struct {
	SchemaVersion int               `json:"schema_version"`
	Page          string            `json:"page"`
	Form          map[string]string `json:"form,omitempty"`
	HasResult     bool              `json:"has_result"`
	OutputState   State             `json:"output_state"`
	Result        json.RawMessage   `json:"result,omitempty"`
	ErrorText     string            `json:"error_text,omitempty"`
	SavedAt       time.Time         `json:"saved_at"`
}

// New builds a snapshot for page with the current schema version.
func New(page string) PageSnapshot {
	return PageSnapshot{
		SchemaVersion: SchemaVersion,
		Page:          page,
		OutputState:   StateIdle,
		SavedAt:       time.Now().UTC(),
	}
}

func (s PageSnapshot) valid() bool {
	return s.SchemaVersion == SchemaVersion && s.Page != "" && s.OutputState != ""
}
