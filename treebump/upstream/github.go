package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/treebump/treebump/internal/log"
)

const DefaultAPIURL = "https://api.github.com"

var errNotFound = errors.New("not found")

type GithubConfig struct {
	APIURL    string
	Token     string
	UserAgent string
	Timeout   time.Duration
}

// GithubResolver resolves releases through the GitHub REST API, preferring the
// formal "latest release" and falling back to the newest tag for projects that only
// push tags.
type GithubResolver struct {
	config GithubConfig
	client *http.Client
}

func NewGithubResolver(cfg GithubConfig) *GithubResolver {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	client := cleanhttp.DefaultClient()
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return &GithubResolver{
		config: cfg,
		client: client,
	}
}

func (r *GithubResolver) Latest(ctx context.Context, repo string) (*Release, error) {
	var release struct {
		TagName     string    `json:"tag_name"`
		PublishedAt time.Time `json:"published_at"`
	}

	err := r.get(ctx, fmt.Sprintf("/repos/%s/releases/latest", repo), &release)
	switch {
	case err == nil:
		return &Release{Tag: release.TagName, PublishedAt: release.PublishedAt}, nil
	case !errors.Is(err, errNotFound):
		return nil, err
	}

	// no formal release published, fall back to the newest tag
	log.Debugf("no releases for %s, falling back to tags", repo)

	var tags []struct {
		Name string `json:"name"`
	}
	if err := r.get(ctx, fmt.Sprintf("/repos/%s/tags", repo), &tags); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, ErrNoReleases
		}
		return nil, err
	}
	if len(tags) == 0 {
		return nil, ErrNoReleases
	}

	return &Release{Tag: tags[0].Name}, nil
}

func (r *GithubResolver) get(ctx context.Context, apiPath string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.config.APIURL+apiPath, nil)
	if err != nil {
		return fmt.Errorf("unable to create request for %s: %w", apiPath, err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if r.config.UserAgent != "" {
		req.Header.Set("User-Agent", r.config.UserAgent)
	}
	if r.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.config.Token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("unable to fetch %s: %w", apiPath, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("HTTP %d on fetching %s", resp.StatusCode, apiPath)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("unable to decode response from %s: %w", apiPath, err)
	}
	return nil
}
