package version

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrict(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
	}{
		{
			input: "1",
			expected: Version{
				Base: []int{1},
			},
		},
		{
			input: "1.2.3",
			expected: Version{
				Base: []int{1, 2, 3},
			},
		},
		{
			input: "1.2.3a",
			expected: Version{
				Base:   []int{1, 2, 3},
				Letter: 'a',
			},
		},
		{
			input: "1.2.3_alpha",
			expected: Version{
				Base:   []int{1, 2, 3},
				Suffix: SuffixAlpha,
			},
		},
		{
			input: "1.2.3_beta2",
			expected: Version{
				Base:    []int{1, 2, 3},
				Suffix:  SuffixBeta,
				Ordinal: 2,
			},
		},
		{
			input: "1.2.3_pre20220101",
			expected: Version{
				Base:    []int{1, 2, 3},
				Suffix:  SuffixPre,
				Ordinal: 20220101,
			},
		},
		{
			input: "1.2.3_rc4-r2",
			expected: Version{
				Base:     []int{1, 2, 3},
				Suffix:   SuffixRC,
				Ordinal:  4,
				Revision: 2,
			},
		},
		{
			input: "1.2.3_p1",
			expected: Version{
				Base:    []int{1, 2, 3},
				Suffix:  SuffixPatch,
				Ordinal: 1,
			},
		},
		{
			input: "6.4.47-r1",
			expected: Version{
				Base:     []int{6, 4, 47},
				Revision: 1,
			},
		},
		{
			// leading zeros carry no special meaning, the numeric value is used
			input: "1.02.3_p04-r01",
			expected: Version{
				Base:     []int{1, 2, 3},
				Suffix:   SuffixPatch,
				Ordinal:  4,
				Revision: 1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			actual, err := Parse(test.input, false)
			require.NoError(t, err)

			assert.Equal(t, test.input, actual.Raw)
			assert.Equal(t, FidelityExact, actual.Fidelity)

			test.expected.Raw = test.input
			if diff := deep.Equal(*actual, test.expected); diff != nil {
				for _, d := range diff {
					t.Errorf("diff: %+v", d)
				}
			}
		})
	}
}

func TestParseStrictRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"banana",
		"1.2.3.stable_04",
		"1.2.3-1",
		"v1.2.3",
		"1.2.3_gamma",
		"1.2.3_alpha_beta",
		"1.2.3A",
		"1.2.3ab",
		"1.2.3-r",
		"1.2.3-r1x",
		"1..2",
		".1.2",
		"1.2.",
		"1.2.3 ",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			actual, err := Parse(input, false)
			assert.Nil(t, actual)

			var formatErr *InvalidFormatError
			require.True(t, errors.As(err, &formatErr), "expected InvalidFormatError, got %+v", err)
			assert.Equal(t, input, formatErr.Raw)
		})
	}
}

func TestParseLenient(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedFidelity Fidelity
		// a strict-grammar string the lenient result must compare equal to
		// (only checked for structured fidelities)
		equivalent string
	}{
		{
			name:             "conforming input stays exact",
			input:            "1.2.3_p1",
			expectedFidelity: FidelityExact,
			equivalent:       "1.2.3_p1",
		},
		{
			name:             "dotted stable marker becomes patch suffix",
			input:            "1.2.3.stable_04",
			expectedFidelity: FidelityRewritten,
			equivalent:       "1.2.3_p4",
		},
		{
			name:             "hyphenated stable marker becomes patch suffix",
			input:            "2.0-stable-7",
			expectedFidelity: FidelityRewritten,
			equivalent:       "2.0_p7",
		},
		{
			name:             "bare stable marker becomes plain patch suffix",
			input:            "1.4_stable",
			expectedFidelity: FidelityRewritten,
			equivalent:       "1.4_p",
		},
		{
			name:             "unsalvageable input falls back to raw",
			input:            "not-a-version",
			expectedFidelity: FidelityRaw,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := Parse(test.input, true)
			require.NoError(t, err)
			require.NotNil(t, actual)

			assert.Equal(t, test.input, actual.Raw)
			assert.Equal(t, test.expectedFidelity, actual.Fidelity)

			if test.equivalent != "" {
				reference, err := Parse(test.equivalent, false)
				require.NoError(t, err)
				assert.Equal(t, Equal, actual.Compare(*reference), "expected %q to order as %q", test.input, test.equivalent)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"1",
		"1.2.3",
		"1.2.3.4",
		"1.2.3a",
		"1.2.3_alpha",
		"1.2.3_alpha1",
		"1.2.3_beta2",
		"1.2.3_pre",
		"1.2.3_rc4",
		"1.2.3_p1",
		"1.2.3-r1",
		"12.0z_rc99-r100",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input, false)
			require.NoError(t, err)

			// re-serialization yields an equal string...
			assert.Equal(t, input, first.String())

			// ... and re-parsing yields an equal structured value
			second, err := Parse(first.String(), false)
			require.NoError(t, err)
			if diff := deep.Equal(*first, *second); diff != nil {
				for _, d := range diff {
					t.Errorf("diff: %+v", d)
				}
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "1.2.3", expected: "1.2.3"},
		{input: "1.02.3", expected: "1.2.3"},
		{input: "1.2.3_p04", expected: "1.2.3_p4"},
		{input: "1.2.3_rc0", expected: "1.2.3_rc"},
		{input: "1.2.3a_pre1-r2", expected: "1.2.3a_pre1-r2"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			v, err := Parse(test.input, false)
			require.NoError(t, err)
			assert.Equal(t, test.expected, v.Canonical())

			// canonical form orders the same as the original
			assert.Equal(t, Equal, Compare(test.input, test.expected).Ordering)
		})
	}
}
