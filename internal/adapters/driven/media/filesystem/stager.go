package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Stager implements the interface.
var _ driven.MediaStager = (*Stager)(nil)

// Stager copies media from the content root into the publish root.
type Stager struct {
	contentRoot string
	publishRoot string
}

// NewStager creates a stager between two roots.
func NewStager(contentRoot, publishRoot string) *Stager {
	return &Stager{contentRoot: contentRoot, publishRoot: publishRoot}
}

// Root returns the publish root.
func (s *Stager) Root() string {
	return s.publishRoot
}

// CopyDir recursively copies a content directory into the publish tree,
// overwriting existing files. A missing source copies nothing.
func (s *Stager) CopyDir(src, dst string) (int, error) {
	srcRoot := filepath.Join(s.contentRoot, filepath.FromSlash(src))
	dstRoot := filepath.Join(s.publishRoot, filepath.FromSlash(dst))

	if _, err := os.Stat(srcRoot); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstRoot, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy %s: %w", src, err)
	}
	return copied, nil
}

// CopyFile copies one content file to a publish-relative destination.
func (s *Stager) CopyFile(src, dst string) error {
	from := filepath.Join(s.contentRoot, filepath.FromSlash(src))
	to := filepath.Join(s.publishRoot, filepath.FromSlash(dst))
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return err
	}
	if err := copyFile(from, to); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
