package version

import "strings"

// Ordering is a three-way comparison result.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	}
	return "equal"
}

// Symbol returns the comparison operator form of the ordering (e.g. "<").
func (o Ordering) Symbol() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return "="
}

// Confidence describes which comparison path produced an Ordering.
type Confidence int

const (
	// ConfidenceStructured indicates both inputs parsed under the strict grammar
	// and the ordering is the documented field-by-field comparison.
	ConfidenceStructured Confidence = iota
	// ConfidenceLexicographic indicates at least one input failed to parse and the
	// ordering degraded to a byte-wise comparison of the raw inputs.
	ConfidenceLexicographic
)

var confidenceStr = []string{
	"structured",
	"lexicographic",
}

func (c Confidence) String() string {
	if int(c) >= len(confidenceStr) || c < 0 {
		return "unknown"
	}
	return confidenceStr[c]
}

// Result carries an ordering together with the confidence of the path that produced
// it, so callers can flag low-confidence comparisons instead of silently trusting them.
type Result struct {
	Ordering   Ordering
	Confidence Confidence
}

// Compare orders two raw version strings. The structured path is taken only when
// both inputs strict-parse; any other combination (including one strict parse and
// one failure) degrades the whole comparison to lexicographic ordering of the raw
// inputs. Compare never fails: malformed input is reflected in the Confidence field,
// not in an error.
func Compare(a, b string) Result {
	av, aErr := Parse(a, false)
	bv, bErr := Parse(b, false)

	if aErr != nil || bErr != nil {
		return Result{
			Ordering:   orderingOf(strings.Compare(a, b)),
			Confidence: ConfidenceLexicographic,
		}
	}

	return Result{
		Ordering:   av.Compare(*bv),
		Confidence: ConfidenceStructured,
	}
}

// Compare orders two structured versions field-by-field: base components, then the
// optional letter, then the suffix tag and its ordinal, then the package revision.
// The first unequal field decides. Raw-fidelity values order by their raw string,
// since their structured fields are empty.
func (v Version) Compare(other Version) Ordering {
	if v.Fidelity == FidelityRaw || other.Fidelity == FidelityRaw {
		return orderingOf(strings.Compare(v.Raw, other.Raw))
	}

	if c := compareBase(v.Base, other.Base); c != Equal {
		return c
	}

	// an absent letter (0) naturally sorts below any lowercase letter
	if c := compareInt(int(v.Letter), int(other.Letter)); c != Equal {
		return c
	}

	if c := compareInt(suffixRank[v.Suffix], suffixRank[other.Suffix]); c != Equal {
		return c
	}

	if c := compareInt(v.Ordinal, other.Ordinal); c != Equal {
		return c
	}

	return compareInt(v.Revision, other.Revision)
}

// compareBase orders base components left-to-right, treating a missing trailing
// component as zero (1.2.3.4 > 1.2.3, while 1.2.3.0 == 1.2.3).
func compareBase(a, b []int) Ordering {
	length := len(a)
	if len(b) > length {
		length = len(b)
	}

	for i := 0; i < length; i++ {
		var av, bv int
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if c := compareInt(av, bv); c != Equal {
			return c
		}
	}

	return Equal
}

func compareInt(a, b int) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}

func orderingOf(i int) Ordering {
	switch {
	case i < 0:
		return Less
	case i > 0:
		return Greater
	}
	return Equal
}
