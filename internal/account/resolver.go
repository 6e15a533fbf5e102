package account

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/searchscope/web/internal/backend"
)

const defaultCacheTTL = 5 * time.Minute

// identityAPI is the slice of the backend client the resolver needs.
type identityAPI interface {
	Me(ctx context.Context, token string) (backend.UserInfo, error)
}

// Resolver resolves a bearer token to a subscription tier. Resolution
// fails closed: no token, a transport failure, or an unrecognized tier
// all yield free. Results are cached per token for the page lifetime so
// a render resolves at most once.
type Resolver struct {
	api    identityAPI
	logger *zap.Logger
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]tierCacheEntry
}

type tierCacheEntry struct {
	tier    Tier
	expires time.Time
}

// NewResolver builds a tier resolver over the given identity API.
func NewResolver(api identityAPI, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		api:    api,
		logger: logger,
		ttl:    defaultCacheTTL,
		cache:  map[string]tierCacheEntry{},
	}
}

// SetCacheTTL overrides the cache duration (primarily for tests).
func (r *Resolver) SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	r.ttl = d
}

// ResolveTier returns the caller's tier. It never returns an error.
func (r *Resolver) ResolveTier(ctx context.Context, token string) Tier {
	if token == "" {
		return TierFree
	}
	if tier, ok := r.cached(token); ok {
		return tier
	}

	info, err := r.api.Me(ctx, token)
	if err != nil {
		// fail closed, do not cache failures
		r.logger.Debug("tier resolution failed, defaulting to free", zap.Error(err))
		return TierFree
	}
	tier := ParseTier(info.Tier)
	r.store(token, tier)
	return tier
}

// Invalidate drops the cached tier for a token, for login/logout transitions.
func (r *Resolver) Invalidate(token string) {
	if token == "" {
		return
	}
	r.mu.Lock()
	delete(r.cache, token)
	r.mu.Unlock()
}

func (r *Resolver) cached(token string) (Tier, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cache[token]
	if !ok {
		return TierFree, false
	}
	if time.Now().After(e.expires) {
		// evict on expiry so stale tokens do not pile up
		delete(r.cache, token)
		return TierFree, false
	}
	return e.tier, true
}

func (r *Resolver) store(token string, tier Tier) {
	r.mu.Lock()
	r.cache[token] = tierCacheEntry{tier: tier, expires: time.Now().Add(r.ttl)}
	r.mu.Unlock()
}
