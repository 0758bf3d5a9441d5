package upstream

import (
	"context"
	"sync"
)

// CachingResolver memoizes per-repository lookups for the lifetime of a run. The
// comparison core is referentially transparent, so a repeated lookup can never
// change a decision; caching only avoids duplicate API calls when several packages
// share one upstream repository.
type CachingResolver struct {
	resolver Resolver
	lock     sync.Mutex
	entries  map[string]cacheEntry
}

type cacheEntry struct {
	release *Release
	err     error
}

func NewCachingResolver(resolver Resolver) *CachingResolver {
	return &CachingResolver{
		resolver: resolver,
		entries:  make(map[string]cacheEntry),
	}
}

func (c *CachingResolver) Latest(ctx context.Context, repo string) (*Release, error) {
	c.lock.Lock()
	entry, hit := c.entries[repo]
	c.lock.Unlock()
	if hit {
		return entry.release, entry.err
	}

	release, err := c.resolver.Latest(ctx, repo)

	c.lock.Lock()
	c.entries[repo] = cacheEntry{release: release, err: err}
	c.lock.Unlock()

	return release, err
}
