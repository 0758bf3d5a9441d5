package overlay

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/treebump/treebump/internal/log"
	"github.com/treebump/treebump/treebump/version"
)

const ebuildExtension = ".ebuild"

// top-level overlay directories that never hold packages
var skippedDirs = map[string]struct{}{
	"distfiles": {},
	"eclass":    {},
	"files":     {},
	"licenses":  {},
	"metadata":  {},
	"profiles":  {},
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := skippedDirs[name]
	return ok
}

// Scan walks an overlay tree laid out as <category>/<package>/<package>-<version>.ebuild
// and returns every discovered package, sorted by atom.
func Scan(fs afero.Fs, root string) ([]Package, error) {
	categories, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("unable to read overlay root %q: %w", root, err)
	}

	var packages []Package
	for _, category := range categories {
		if !category.IsDir() || skipDir(category.Name()) {
			continue
		}

		categoryPath := path.Join(root, category.Name())
		pkgDirs, err := afero.ReadDir(fs, categoryPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read category %q: %w", categoryPath, err)
		}

		for _, pkgDir := range pkgDirs {
			if !pkgDir.IsDir() || skipDir(pkgDir.Name()) {
				continue
			}

			p, err := readPackage(fs, categoryPath, category.Name(), pkgDir.Name())
			if err != nil {
				return nil, err
			}
			if p != nil {
				packages = append(packages, *p)
			}
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Atom() < packages[j].Atom()
	})

	return packages, nil
}

func readPackage(fs afero.Fs, categoryPath, category, name string) (*Package, error) {
	pkgPath := path.Join(categoryPath, name)
	entries, err := afero.ReadDir(fs, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read package dir %q: %w", pkgPath, err)
	}

	p := Package{
		Category: category,
		Name:     name,
		Repo:     readRemoteRepo(fs, pkgPath),
	}

	prefix := name + "-"
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ebuildExtension) {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), ebuildExtension)
		if !strings.HasPrefix(base, prefix) {
			log.Warnf("ebuild %q does not match package dir %q, skipping", entry.Name(), name)
			continue
		}

		ver := strings.TrimPrefix(base, prefix)
		if ver == "" {
			log.Warnf("ebuild %q has no version, skipping", entry.Name())
			continue
		}
		p.Versions = append(p.Versions, ver)
	}

	if len(p.Versions) == 0 {
		// not a package dir (e.g. only files/ or metadata.xml present)
		return nil, nil
	}

	sort.Slice(p.Versions, func(i, j int) bool {
		return version.Compare(p.Versions[i], p.Versions[j]).Ordering == version.Less
	})
	return &p, nil
}
