package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/treebump/treebump/internal"
	"github.com/treebump/treebump/treebump/upstream"
)

// upstreamSource contains all release-resolution options available to the user via the application config.
type upstreamSource struct {
	APIURL  string `yaml:"api-url" json:"api-url" mapstructure:"api-url"`
	Token   string `yaml:"-" json:"-" mapstructure:"token"` // never echo the token back out in config dumps
	Timeout string `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	Cache   bool   `yaml:"cache" json:"cache" mapstructure:"cache"`

	TimeoutOpt time.Duration `yaml:"-" json:"-"`
}

func (cfg upstreamSource) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("upstream.api-url", upstream.DefaultAPIURL)
	v.SetDefault("upstream.token", "")
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("upstream.cache", true)
}

func (cfg *upstreamSource) parseConfigValues() error {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("bad upstream.timeout value '%s': %w", cfg.Timeout, err)
	}
	cfg.TimeoutOpt = timeout
	return nil
}

// ToResolverConfig converts the upstream configuration into the form the resolver consumes.
func (cfg upstreamSource) ToResolverConfig() upstream.GithubConfig {
	return upstream.GithubConfig{
		APIURL:    cfg.APIURL,
		Token:     cfg.Token,
		UserAgent: internal.ApplicationName,
		Timeout:   cfg.TimeoutOpt,
	}
}
