package version

import (
	"regexp"
	"strconv"
	"strings"
)

// For the reference grammar, see:
// https://projects.gentoo.org/pms/8/pms.html#x1-250003.2
var grammarPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)([a-z])?(?:_(alpha|beta|pre|rc|p)(\d*))?(?:-r(\d+))?$`)

// Fidelity records how faithful a parsed Version is to its raw input.
type Fidelity int

const (
	// FidelityExact indicates the input matched the strict ebuild grammar as-is.
	FidelityExact Fidelity = iota
	// FidelityRewritten indicates a lenient pre-parse rewrite was applied before
	// the grammar matched; the structured fields are best-effort, not an exact parse.
	FidelityRewritten
	// FidelityRaw indicates no structured parse was possible; only the raw string
	// is usable, and only for lexicographic comparison.
	FidelityRaw
)

var fidelityStr = []string{
	"exact",
	"rewritten",
	"raw",
}

func (f Fidelity) String() string {
	if int(f) >= len(fidelityStr) || f < 0 {
		return "unknown"
	}
	return fidelityStr[f]
}

// SuffixKind is the version suffix marker: a pre-release tag (alpha/beta/pre/rc),
// a patch tag (p), or none.
type SuffixKind int

const (
	SuffixNone SuffixKind = iota
	SuffixAlpha
	SuffixBeta
	SuffixPre
	SuffixRC
	SuffixPatch
)

// rank of each suffix within the total order: every pre-release tag sorts below a
// plain release, and a patched release sorts above it.
var suffixRank = map[SuffixKind]int{
	SuffixAlpha: -4,
	SuffixBeta:  -3,
	SuffixPre:   -2,
	SuffixRC:    -1,
	SuffixNone:  0,
	SuffixPatch: 1,
}

var suffixKinds = map[string]SuffixKind{
	"alpha": SuffixAlpha,
	"beta":  SuffixBeta,
	"pre":   SuffixPre,
	"rc":    SuffixRC,
	"p":     SuffixPatch,
}

func (k SuffixKind) String() string {
	for str, kind := range suffixKinds {
		if kind == k {
			return str
		}
	}
	return ""
}

// Version is the structured form of an ebuild-style version string. A Version is
// immutable once parsed and is not shared between comparisons.
type Version struct {
	Raw      string
	Fidelity Fidelity
	Base     []int      // dot-separated numeric components
	Letter   byte       // optional trailing letter on the base, 0 when absent
	Suffix   SuffixKind // _alpha/_beta/_pre/_rc/_p marker
	Ordinal  int        // suffix ordinal, 0 when the suffix carries no number
	Revision int        // -rN package revision, 0 when absent
}

// Parse interprets an ebuild-style version string. In strict mode any input that
// deviates from the grammar yields an *InvalidFormatError. In lenient mode a fixed
// set of rewrites for known vendor patterns is attempted first, and input that still
// does not conform is returned as a raw-fidelity value that supports lexicographic
// comparison only (callers can inspect Fidelity to tell these outcomes apart).
func Parse(raw string, lenient bool) (*Version, error) {
	if v := parseStrict(raw); v != nil {
		return v, nil
	}

	if !lenient {
		return nil, &InvalidFormatError{Raw: raw}
	}

	if v := parseStrict(applyLenientRewrites(raw)); v != nil {
		v.Raw = raw
		v.Fidelity = FidelityRewritten
		return v, nil
	}

	return &Version{
		Raw:      raw,
		Fidelity: FidelityRaw,
	}, nil
}

func parseStrict(raw string) *Version {
	match := grammarPattern.FindStringSubmatch(raw)
	if match == nil {
		return nil
	}

	v := &Version{
		Raw:      raw,
		Fidelity: FidelityExact,
	}

	for _, component := range strings.Split(match[1], ".") {
		value, err := strconv.Atoi(component)
		if err != nil {
			// a numeric component too large for the host int is out of scope
			return nil
		}
		v.Base = append(v.Base, value)
	}

	if match[2] != "" {
		v.Letter = match[2][0]
	}

	if match[3] != "" {
		v.Suffix = suffixKinds[match[3]]
		if match[4] != "" {
			ordinal, err := strconv.Atoi(match[4])
			if err != nil {
				return nil
			}
			v.Ordinal = ordinal
		}
	}

	if match[5] != "" {
		revision, err := strconv.Atoi(match[5])
		if err != nil {
			return nil
		}
		v.Revision = revision
	}

	return v
}

// String returns the original input for parsed versions (so that every strict parse
// round-trips byte-for-byte) and the canonical rendering otherwise.
func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return v.Canonical()
}

// Canonical renders the structured fields back into grammar form. Leading zeros and
// explicit zero ordinals from the original input are not preserved; the result
// always compares equal to the source version.
func (v Version) Canonical() string {
	var sb strings.Builder

	for i, component := range v.Base {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(component))
	}

	if v.Letter != 0 {
		sb.WriteByte(v.Letter)
	}

	if v.Suffix != SuffixNone {
		sb.WriteByte('_')
		sb.WriteString(v.Suffix.String())
		if v.Ordinal != 0 {
			sb.WriteString(strconv.Itoa(v.Ordinal))
		}
	}

	if v.Revision != 0 {
		sb.WriteString("-r")
		sb.WriteString(strconv.Itoa(v.Revision))
	}

	return sb.String()
}
