package snapshot

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStore keeps snapshots in process memory with a TTL. It is the
// default backend for single-instance deployments and tests.
type MemoryStore struct {
	ttl time.Duration

	mu        sync.RWMutex
	items     map[string]memoryEntry
	nextSweep time.Time
}

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// NewMemoryStore builds an in-memory store; ttl <= 0 uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, items: map[string]memoryEntry{}}
}

func (m *MemoryStore) Save(_ context.Context, key, page string, snap PageSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	now := time.Now()
	m.mu.Lock()
	m.items[storeKey(key, page)] = memoryEntry{payload: payload, expires: now.Add(m.ttl)}
	// opportunistic sweep so abandoned sessions do not accumulate
	if now.After(m.nextSweep) {
		for k, e := range m.items {
			if now.After(e.expires) {
				delete(m.items, k)
			}
		}
		m.nextSweep = now.Add(m.ttl)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Restore(_ context.Context, key, page string) (PageSnapshot, bool) {
	m.mu.RLock()
	e, ok := m.items[storeKey(key, page)]
	m.mu.RUnlock()
	if !ok {
		return PageSnapshot{}, false
	}
	if time.Now().After(e.expires) {
		m.Clear(context.Background(), key, page)
		return PageSnapshot{}, false
	}
	var snap PageSnapshot
	if err := json.Unmarshal(e.payload, &snap); err != nil || !snap.valid() {
		m.Clear(context.Background(), key, page)
		return PageSnapshot{}, false
	}
	return snap, true
}

func (m *MemoryStore) Clear(_ context.Context, key, page string) {
	m.mu.Lock()
	delete(m.items, storeKey(key, page))
	m.mu.Unlock()
}

func storeKey(key, page string) string {
	return key + ":" + page
}
