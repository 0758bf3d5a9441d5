package version

import (
	"regexp"
	"strings"
)

// RewriteRule rewrites the first match of Pattern with Replacement ($N groups are
// expanded). Rules let callers map package-specific upstream suffix conventions onto
// the distro grammar without teaching the normalizer about individual vendors.
type RewriteRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func (r RewriteRule) apply(s string) string {
	loc := r.Pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	out := append([]byte{}, s[:loc[0]]...)
	out = r.Pattern.ExpandString(out, r.Replacement, s, loc)
	return string(append(out, s[loc[1]:]...))
}

// lenientRewrites is the fixed set of pre-parse rewrites applied in lenient mode and
// as the last step of MapUpstreamToDistroForm. Each maps a known non-conforming
// vendor pattern onto the patch-suffix form the grammar understands.
var lenientRewrites = []RewriteRule{
	// a dotted, underscored or hyphenated "stable" marker with an optional ordinal,
	// e.g. "1.2.3.stable_04" or "1.2.3-stable-4" -> "1.2.3_p4"
	{Pattern: regexp.MustCompile(`[._-]stable[._-]?(\d*)$`), Replacement: "_p$1"},
}

func applyLenientRewrites(s string) string {
	for _, rule := range lenientRewrites {
		s = rule.apply(s)
	}
	return s
}

// NormalizeUpstream strips the decorations that common upstream tagging conventions
// add: surrounding whitespace, a single leading "v"/"V", and a leading "release-"
// literal. It is total (never fails) and makes no guarantee that the result conforms
// to the ebuild grammar; downstream parsing still decides that.
func NormalizeUpstream(tag string) string {
	tag = strings.TrimSpace(tag)
	if len(tag) > 0 && (tag[0] == 'v' || tag[0] == 'V') {
		tag = tag[1:]
	}
	return strings.TrimPrefix(tag, "release-")
}

// MapUpstreamToDistroForm translates an upstream tag into the distro's version
// syntax: NormalizeUpstream first, then each caller-supplied rule in order (first
// match per rule, not global), then the same built-in stable-marker rewrite used by
// lenient parsing, so ad hoc upstream conventions converge on one canonical form.
func MapUpstreamToDistroForm(tag string, rules []RewriteRule) string {
	out := NormalizeUpstream(tag)
	for _, rule := range rules {
		out = rule.apply(out)
	}
	return applyLenientRewrites(out)
}
