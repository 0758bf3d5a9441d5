package overlay

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fooMetadata = `<?xml version="1.0" encoding="UTF-8"?>
<pkgmetadata>
	<maintainer type="person">
		<email>someone@example.com</email>
	</maintainer>
	<upstream>
		<remote-id type="github">acme/foo</remote-id>
	</upstream>
</pkgmetadata>
`

func newTestOverlay(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()

	files := map[string]string{
		"overlay/dev-util/foo/foo-1.2.3.ebuild":    "",
		"overlay/dev-util/foo/foo-1.2.3-r1.ebuild": "",
		"overlay/dev-util/foo/metadata.xml":        fooMetadata,
		"overlay/app-misc/bar/bar-0.9.ebuild":      "",
		"overlay/dev-libs/many/many-1.10.ebuild":   "",
		"overlay/dev-libs/many/many-1.9.ebuild":    "",
		// not a package: ebuild name does not match the dir
		"overlay/app-misc/baz/other-1.0.ebuild": "",
		// never package dirs
		"overlay/eclass/foo.eclass":       "",
		"overlay/profiles/repo_name":      "treebump-test",
		"overlay/metadata/layout.conf":    "",
		"overlay/.git/config":             "",
		"overlay/dev-util/files/extra.sh": "",
	}
	for name, contents := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(contents), 0644))
	}
	return fs
}

func TestScan(t *testing.T) {
	fs := newTestOverlay(t)

	packages, err := Scan(fs, "overlay")
	require.NoError(t, err)

	expected := []Package{
		{
			Category: "app-misc",
			Name:     "bar",
			Versions: []string{"0.9"},
		},
		{
			// version order follows the comparator, not string sorting
			Category: "dev-libs",
			Name:     "many",
			Versions: []string{"1.9", "1.10"},
		},
		{
			Category: "dev-util",
			Name:     "foo",
			Versions: []string{"1.2.3", "1.2.3-r1"},
			Repo:     "acme/foo",
		},
	}
	assert.Equal(t, expected, packages)
}

func TestScanMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Scan(fs, "no-such-overlay")
	assert.Error(t, err)
}

func TestInstalled(t *testing.T) {
	tests := []struct {
		name     string
		pkg      Package
		expected string
	}{
		{
			name:     "single version",
			pkg:      Package{Versions: []string{"1.2.3"}},
			expected: "1.2.3",
		},
		{
			name:     "revision wins over base",
			pkg:      Package{Versions: []string{"1.2.3", "1.2.3-r1"}},
			expected: "1.2.3-r1",
		},
		{
			name:     "ordered by version rules not strings",
			pkg:      Package{Versions: []string{"1.10", "1.9"}},
			expected: "1.10",
		},
		{
			name:     "no versions",
			pkg:      Package{},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.pkg.Installed())
		})
	}
}

func TestAtom(t *testing.T) {
	p := Package{Category: "dev-util", Name: "foo"}
	assert.Equal(t, "dev-util/foo", p.Atom())
}
