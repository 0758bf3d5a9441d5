package upstream

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls    map[string]int
	releases map[string]*Release
	errs     map[string]error
}

func (c *countingResolver) Latest(_ context.Context, repo string) (*Release, error) {
	c.calls[repo]++
	return c.releases[repo], c.errs[repo]
}

func newCountingResolver() *countingResolver {
	return &countingResolver{
		calls:    make(map[string]int),
		releases: make(map[string]*Release),
		errs:     make(map[string]error),
	}
}

func TestCachingResolverMemoizes(t *testing.T) {
	underlying := newCountingResolver()
	underlying.releases["acme/foo"] = &Release{Tag: "v1.0.0"}

	resolver := NewCachingResolver(underlying)

	for i := 0; i < 3; i++ {
		release, err := resolver.Latest(context.Background(), "acme/foo")
		require.NoError(t, err)
		assert.Equal(t, "v1.0.0", release.Tag)
	}

	assert.Equal(t, 1, underlying.calls["acme/foo"])
}

func TestCachingResolverMemoizesErrors(t *testing.T) {
	underlying := newCountingResolver()
	resolveErr := errors.New("rate limited")
	underlying.errs["acme/foo"] = resolveErr

	resolver := NewCachingResolver(underlying)

	for i := 0; i < 2; i++ {
		_, err := resolver.Latest(context.Background(), "acme/foo")
		assert.ErrorIs(t, err, resolveErr)
	}

	assert.Equal(t, 1, underlying.calls["acme/foo"])
}

func TestCachingResolverSeparateRepos(t *testing.T) {
	underlying := newCountingResolver()
	underlying.releases["acme/foo"] = &Release{Tag: "v1.0.0"}
	underlying.releases["acme/bar"] = &Release{Tag: "v2.0.0"}

	resolver := NewCachingResolver(underlying)

	fooRelease, err := resolver.Latest(context.Background(), "acme/foo")
	require.NoError(t, err)
	barRelease, err := resolver.Latest(context.Background(), "acme/bar")
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", fooRelease.Tag)
	assert.Equal(t, "v2.0.0", barRelease.Tag)
	assert.Equal(t, 1, underlying.calls["acme/foo"])
	assert.Equal(t, 1, underlying.calls["acme/bar"])
}
