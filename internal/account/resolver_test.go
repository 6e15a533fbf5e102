package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/searchscope/web/internal/backend"
)

type fakeIdentity struct {
	tier  string
	err   error
	calls int
}

func (f *fakeIdentity) Me(ctx context.Context, token string) (backend.UserInfo, error) {
	f.calls++
	if f.err != nil {
		return backend.UserInfo{}, f.err
	}
	return backend.UserInfo{Tier: f.tier}, nil
}

func TestParseTier(t *testing.T) {
	assert.Equal(t, TierPro, ParseTier("PRO"))
	assert.Equal(t, TierEnterprise, ParseTier(" enterprise "))
	assert.Equal(t, TierFree, ParseTier("platinum"))
	assert.Equal(t, TierFree, ParseTier(""))
	assert.True(t, TierPro.Paid())
	assert.False(t, TierFree.Paid())
}

func TestResolveTierNoTokenSkipsNetwork(t *testing.T) {
	api := &fakeIdentity{tier: "pro"}
	r := NewResolver(api, nil)
	assert.Equal(t, TierFree, r.ResolveTier(context.Background(), ""))
	assert.Zero(t, api.calls)
}

func TestResolveTierFailsClosed(t *testing.T) {
	api := &fakeIdentity{err: errors.New("boom")}
	r := NewResolver(api, nil)
	assert.Equal(t, TierFree, r.ResolveTier(context.Background(), "tok"))
}

func TestResolveTierCachesPerToken(t *testing.T) {
	api := &fakeIdentity{tier: "enterprise"}
	r := NewResolver(api, nil)

	assert.Equal(t, TierEnterprise, r.ResolveTier(context.Background(), "tok"))
	assert.Equal(t, TierEnterprise, r.ResolveTier(context.Background(), "tok"))
	assert.Equal(t, 1, api.calls)

	r.Invalidate("tok")
	assert.Equal(t, TierEnterprise, r.ResolveTier(context.Background(), "tok"))
	assert.Equal(t, 2, api.calls)
}

func TestResolveTierCacheExpires(t *testing.T) {
	api := &fakeIdentity{tier: "pro"}
	r := NewResolver(api, nil)
	r.SetCacheTTL(time.Millisecond)

	r.ResolveTier(context.Background(), "tok")
	time.Sleep(5 * time.Millisecond)
	r.ResolveTier(context.Background(), "tok")
	assert.Equal(t, 2, api.calls)
}

func TestResolveTierEvictsExpiredEntries(t *testing.T) {
	api := &fakeIdentity{tier: "pro"}
	r := NewResolver(api, nil)
	r.SetCacheTTL(time.Millisecond)

	r.ResolveTier(context.Background(), "tok")
	time.Sleep(5 * time.Millisecond)

	// the refresh fails, so nothing re-populates the cache; the stale
	// entry must still be gone after the expired read
	api.err = errors.New("upstream down")
	assert.Equal(t, TierFree, r.ResolveTier(context.Background(), "tok"))

	r.mu.Lock()
	remaining := len(r.cache)
	r.mu.Unlock()
	assert.Zero(t, remaining)
}
