package overlay

import (
	"github.com/treebump/treebump/treebump/version"
)

// Package is a single discovered overlay package together with every version it is
// packaged at.
type Package struct {
	Category string
	Name     string
	Versions []string
	Repo     string // upstream repository slug from metadata.xml, e.g. "owner/project"
}

// Atom returns the category/name form of the package.
func (p Package) Atom() string {
	return p.Category + "/" + p.Name
}

// Installed returns the highest packaged version under the distro ordering. With a
// single packaged version (the common case) that version is returned as-is.
func (p Package) Installed() string {
	if len(p.Versions) == 0 {
		return ""
	}

	highest := p.Versions[0]
	for _, candidate := range p.Versions[1:] {
		if version.Compare(candidate, highest).Ordering == version.Greater {
			highest = candidate
		}
	}
	return highest
}
