package snapshot

import (
	"context"
	"time"
)

// DefaultTTL approximates a browser tab session: long enough to survive
// a reload, short enough that stale dashboards do not linger.
const DefaultTTL = 30 * time.Minute

// Store persists per-page snapshots keyed by the session's snapshot key.
// Writes are last-write-wins; there is no locking across callers beyond
// what each implementation needs for its own integrity. Restore returns
// false for missing, corrupt, or schema-mismatched entries. Corruption
// is recoverable and must never surface as an error to the page.
type Store interface {
	Save(ctx context.Context, key, page string, snap PageSnapshot) error
	Restore(ctx context.Context, key, page string) (PageSnapshot, bool)
	Clear(ctx context.Context, key, page string)
}
