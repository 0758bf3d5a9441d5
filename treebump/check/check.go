package check

import (
	"context"
	"errors"
	"time"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/treebump/treebump/internal/bus"
	"github.com/treebump/treebump/internal/log"
	"github.com/treebump/treebump/treebump/event"
	"github.com/treebump/treebump/treebump/overlay"
	"github.com/treebump/treebump/treebump/upstream"
	"github.com/treebump/treebump/treebump/version"
)

// ErrUpdatesAvailable is the expected failure used to drive a non-zero exit code
// when the caller asked to fail on outdated packages.
var ErrUpdatesAvailable = errors.New("one or more packages have an update available")

// Status classifies a package relative to its upstream.
type Status string

const (
	UpToDate        Status = "up-to-date"
	UpdateAvailable Status = "update-available"
	Unknown         Status = "unknown"
)

// Result is the decision for a single package.
type Result struct {
	Package     string     `json:"package"`
	Installed   string     `json:"installed"`
	UpstreamTag string     `json:"upstreamTag,omitempty"`
	Normalized  string     `json:"normalized,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Status      Status     `json:"status"`
	Confidence  string     `json:"confidence,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// Overrides carries per-package configuration, keyed by atom: an explicit upstream
// repository (taking precedence over metadata.xml) and tag rewrite rules.
type Overrides struct {
	Repo     string
	Rewrites []version.RewriteRule
}

// Monitor exposes live progress of a running update check.
type Monitor struct {
	PackagesChecked progress.Monitorable
	UpdatesFound    progress.Monitorable
}

func trackCheck(total int64) (*progress.Manual, *progress.Manual) {
	packagesChecked := progress.Manual{Total: total}
	updatesFound := progress.Manual{}

	bus.Publish(partybus.Event{
		Type: event.UpdateCheckStarted,
		Value: Monitor{
			PackagesChecked: progress.Monitorable(&packagesChecked),
			UpdatesFound:    progress.Monitorable(&updatesFound),
		},
	})
	return &packagesChecked, &updatesFound
}

// Run resolves and classifies every package sequentially, never failing the overall
// run on a single package: resolution errors degrade that package to Unknown.
func Run(ctx context.Context, resolver upstream.Resolver, packages []overlay.Package, overrides map[string]Overrides) []Result {
	packagesChecked, updatesFound := trackCheck(int64(len(packages)))

	results := make([]Result, 0, len(packages))
	for _, p := range packages {
		result := checkPackage(ctx, resolver, p, overrides[p.Atom()])
		if result.Status == UpdateAvailable {
			updatesFound.N++
		}
		packagesChecked.N++
		results = append(results, result)
	}

	packagesChecked.SetCompleted()
	updatesFound.SetCompleted()

	return results
}

func checkPackage(ctx context.Context, resolver upstream.Resolver, p overlay.Package, overrides Overrides) Result {
	result := Result{
		Package:   p.Atom(),
		Installed: p.Installed(),
	}

	repo := overrides.Repo
	if repo == "" {
		repo = p.Repo
	}
	if repo == "" {
		result.Status = Unknown
		result.Reason = "no upstream repository configured"
		return result
	}

	release, err := resolver.Latest(ctx, repo)
	if err != nil {
		log.Warnf("unable to resolve upstream for %s (%s): %+v", p.Atom(), repo, err)
		result.Status = Unknown
		result.Reason = err.Error()
		return result
	}

	result.UpstreamTag = release.Tag
	result.Normalized = version.MapUpstreamToDistroForm(release.Tag, overrides.Rewrites)
	if !release.PublishedAt.IsZero() {
		published := release.PublishedAt
		result.PublishedAt = &published
	}

	comparison := version.Compare(result.Installed, result.Normalized)
	result.Confidence = comparison.Confidence.String()

	// a local build at or above the upstream release (patched or revised) is current
	if comparison.Ordering == version.Less {
		result.Status = UpdateAvailable
	} else {
		result.Status = UpToDate
	}

	log.Debugf("checked %s: installed=%s upstream=%s status=%s confidence=%s",
		p.Atom(), result.Installed, result.Normalized, result.Status, result.Confidence)

	return result
}

// HasUpdates reports whether any result has an update available.
func HasUpdates(results []Result) bool {
	for _, result := range results {
		if result.Status == UpdateAvailable {
			return true
		}
	}
	return false
}
