// Package memory keeps generated artifacts in memory.
// It backs dry runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ns-engineering/contentbuild/internal/adapters/driven/output/file"
	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer is an in-memory implementation of driven.ArtifactWriter.
// Artifacts are encoded exactly as the file writer would encode them.
type Writer struct {
	mu        sync.RWMutex
	artifacts map[string][]byte
	bodies    map[string]any
}

// NewWriter creates an empty in-memory writer.
func NewWriter() *Writer {
	return &Writer{
		artifacts: make(map[string][]byte),
		bodies:    make(map[string]any),
	}
}

// Write encodes and stores the artifact.
func (w *Writer) Write(ctx context.Context, artifact domain.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := file.Encode(artifact.Body)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.artifacts[artifact.Name] = data
	w.bodies[artifact.Name] = artifact.Body
	return nil
}

// Get returns the encoded artifact.
func (w *Writer) Get(name string) ([]byte, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	data, ok := w.artifacts[name]
	return data, ok
}

// Body returns the value the artifact was built from.
func (w *Writer) Body(name string) (any, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	body, ok := w.bodies[name]
	return body, ok
}

// Names lists stored artifacts in sorted order.
func (w *Writer) Names() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, len(w.artifacts))
	for name := range w.artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
