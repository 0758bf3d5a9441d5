package config

import "github.com/treebump/treebump/treebump/version"

// packageConfig carries per-package overrides: an explicit upstream repository (which
// takes precedence over the overlay metadata) and tag rewrite rules applied before the
// built-in normalization.
type packageConfig struct {
	Repo     string        `yaml:"repo" json:"repo" mapstructure:"repo"`
	Rewrites []rewriteRule `yaml:"rewrites" json:"rewrites" mapstructure:"rewrites"`

	rules []version.RewriteRule
}

type rewriteRule struct {
	Pattern     string `yaml:"pattern" json:"pattern" mapstructure:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement" mapstructure:"replacement"`
}
