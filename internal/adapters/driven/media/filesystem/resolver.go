// Package filesystem resolves and stages media files on the local disk.
package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.MediaResolver = (*Resolver)(nil)

// Resolver scans media directories below a content root.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at the content directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the content root.
func (r *Resolver) Root() string {
	return r.root
}

// Exists reports whether a content-relative path exists.
func (r *Resolver) Exists(path string) bool {
	_, err := os.Stat(r.abs(path))
	return err == nil
}

// List returns the files of dir whose extension is allowed for kind,
// sorted for that kind. A missing directory yields an empty list.
func (r *Resolver) List(dir string, kind domain.MediaKind) ([]string, error) {
	entries, err := os.ReadDir(r.abs(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return []string{}, err
	}

	allowed := kind.Extensions()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, a := range allowed {
			if ext == a {
				names = append(names, e.Name())
				break
			}
		}
	}

	SortNames(names, kind.NaturalSort())
	return names, nil
}

// Resolve applies the CSV override, then the directory scan, then hero
// selection. A non-empty Explicit list is used verbatim without touching
// the disk.
func (r *Resolver) Resolve(q domain.MediaQuery) domain.ResolvedMedia {
	var res domain.ResolvedMedia

	if len(q.Explicit) > 0 {
		res.Files = append([]string(nil), q.Explicit...)
		res.FromCSV = true
	} else {
		res.Files, res.ScanErr = r.List(q.Dir, q.Kind)
	}

	res.Hero = res.First()
	if q.Hero != "" {
		if contains(res.Files, q.Hero) {
			res.Hero = q.Hero
		} else {
			res.HeroMissing = true
		}
	}
	return res
}

// SortNames sorts filenames in place. Lexicographic order compares bytes;
// natural order compares digit runs as numbers and ignores case, with
// byte order breaking ties so the result is deterministic.
func SortNames(names []string, natural bool) {
	sort.Strings(names)
	if !natural {
		return
	}
	c := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}

func (r *Resolver) abs(path string) string {
	return filepath.Join(r.root, filepath.FromSlash(path))
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
