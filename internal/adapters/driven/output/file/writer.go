// Package file writes generated JSON artifacts to an output directory.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer stores artifacts as indented JSON files.
type Writer struct {
	dir string
}

// NewWriter creates a writer for the output directory.
// The directory is created on first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write encodes the artifact and replaces the target file atomically.
func (w *Writer) Write(ctx context.Context, artifact domain.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(artifact.Body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", artifact.Name, err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, "."+artifact.Name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", artifact.Name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", artifact.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", artifact.Name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("write %s: %w", artifact.Name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(w.dir, artifact.Name)); err != nil {
		return fmt.Errorf("write %s: %w", artifact.Name, err)
	}
	return nil
}

// Encode renders v as two-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
