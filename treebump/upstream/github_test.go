package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubResolverLatestRelease(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/repos/acme/foo/releases/latest":
			w.Write([]byte(`{"tag_name": "v2.0.0", "published_at": "2021-06-01T12:00:00Z"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	resolver := NewGithubResolver(GithubConfig{
		APIURL: server.URL,
		Token:  "s3cr3t",
	})

	release, err := resolver.Latest(context.Background(), "acme/foo")
	require.NoError(t, err)

	assert.Equal(t, "v2.0.0", release.Tag)
	assert.Equal(t, time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC), release.PublishedAt)
	assert.Equal(t, "Bearer s3cr3t", gotAuth)
}

func TestGithubResolverTagFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/tags-only/tags":
			w.Write([]byte(`[{"name": "v1.4.0"}, {"name": "v1.3.0"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	resolver := NewGithubResolver(GithubConfig{APIURL: server.URL})

	release, err := resolver.Latest(context.Background(), "acme/tags-only")
	require.NoError(t, err)

	assert.Equal(t, "v1.4.0", release.Tag)
	assert.True(t, release.PublishedAt.IsZero())
}

func TestGithubResolverNoReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/empty/tags":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	resolver := NewGithubResolver(GithubConfig{APIURL: server.URL})

	tests := []string{
		"acme/empty",   // tag listing exists but is empty
		"acme/missing", // repo not found at all
	}
	for _, repo := range tests {
		t.Run(repo, func(t *testing.T) {
			_, err := resolver.Latest(context.Background(), repo)
			assert.ErrorIs(t, err, ErrNoReleases)
		})
	}
}

func TestGithubResolverServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewGithubResolver(GithubConfig{APIURL: server.URL})

	_, err := resolver.Latest(context.Background(), "acme/foo")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoReleases)
}
