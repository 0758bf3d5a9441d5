package upstream

import (
	"context"
	"errors"
	"time"
)

// ErrNoReleases indicates a repository that exists but has no published releases or
// tags to resolve a version from.
var ErrNoReleases = errors.New("no releases found")

// Release is the newest published upstream release for a repository. PublishedAt is
// zero when the source (e.g. a bare tag) carries no timestamp.
type Release struct {
	Tag         string
	PublishedAt time.Time
}

// Resolver resolves the latest upstream release for a repository slug (e.g.
// "owner/project"). Implementations must be safe for concurrent use.
type Resolver interface {
	Latest(ctx context.Context, repo string) (*Release, error)
}
