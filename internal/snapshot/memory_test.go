package snapshot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	snap := New("analyzer")
	snap.Form = map[string]string{"url": "https://example.com"}
	snap.HasResult = true
	snap.OutputState = StateResult
	snap.Result = json.RawMessage(`{"url":"https://example.com","seo_result":{"score":72}}`)

	require.NoError(t, store.Save(ctx, "sess-1", "analyzer", snap))

	got, ok := store.Restore(ctx, "sess-1", "analyzer")
	require.True(t, ok)
	assert.Equal(t, snap.Form, got.Form)
	assert.Equal(t, StateResult, got.OutputState)
	assert.JSONEq(t, string(snap.Result), string(got.Result))
}

func TestRestoreMissing(t *testing.T) {
	store := NewMemoryStore(0)
	_, ok := store.Restore(context.Background(), "sess-1", "analyzer")
	assert.False(t, ok)
}

func TestRestoreIsScopedPerPage(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	snap := New("keyword-rank")
	snap.OutputState = StateError
	snap.ErrorText = "upstream exploded"
	require.NoError(t, store.Save(ctx, "sess-1", "keyword-rank", snap))

	_, ok := store.Restore(ctx, "sess-1", "analyzer")
	assert.False(t, ok)
	_, ok = store.Restore(ctx, "sess-2", "keyword-rank")
	assert.False(t, ok)

	got, ok := store.Restore(ctx, "sess-1", "keyword-rank")
	require.True(t, ok)
	assert.Equal(t, "upstream exploded", got.ErrorText)
}

func TestRestoreExpired(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "sess-1", "analyzer", New("analyzer")))
	time.Sleep(5 * time.Millisecond)
	_, ok := store.Restore(ctx, "sess-1", "analyzer")
	assert.False(t, ok)

	// the expired entry is evicted on read, not left to accumulate
	store.mu.RLock()
	_, remains := store.items[storeKey("sess-1", "analyzer")]
	store.mu.RUnlock()
	assert.False(t, remains)
}

func TestSaveSweepsExpiredEntries(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", "analyzer", New("analyzer")))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.Save(ctx, "sess-2", "analyzer", New("analyzer")))

	// the second save purges sess-1 without it ever being read again
	store.mu.RLock()
	_, stale := store.items[storeKey("sess-1", "analyzer")]
	live := len(store.items)
	store.mu.RUnlock()
	assert.False(t, stale)
	assert.Equal(t, 1, live)
}

func TestRestoreDiscardsSchemaMismatch(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	snap := New("analyzer")
	snap.SchemaVersion = SchemaVersion + 1
	require.NoError(t, store.Save(ctx, "sess-1", "analyzer", snap))

	_, ok := store.Restore(ctx, "sess-1", "analyzer")
	assert.False(t, ok)
	// the corrupted entry is cleared, not left behind
	store.mu.RLock()
	_, remains := store.items[storeKey("sess-1", "analyzer")]
	store.mu.RUnlock()
	assert.False(t, remains)
}

func TestRestoreDiscardsCorruptPayload(t *testing.T) {
	store := NewMemoryStore(0)
	store.mu.Lock()
	store.items[storeKey("sess-1", "analyzer")] = memoryEntry{
		payload: []byte("{not json"),
		expires: time.Now().Add(time.Minute),
	}
	store.mu.Unlock()

	_, ok := store.Restore(context.Background(), "sess-1", "analyzer")
	assert.False(t, ok)
}

func TestLastWriteWins(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	first := New("prompt-tracker")
	first.ErrorText = "first"
	first.OutputState = StateError
	second := New("prompt-tracker")
	second.OutputState = StateSample

	require.NoError(t, store.Save(ctx, "sess-1", "prompt-tracker", first))
	require.NoError(t, store.Save(ctx, "sess-1", "prompt-tracker", second))

	got, ok := store.Restore(ctx, "sess-1", "prompt-tracker")
	require.True(t, ok)
	assert.Equal(t, StateSample, got.OutputState)
	assert.Empty(t, got.ErrorText)
}
