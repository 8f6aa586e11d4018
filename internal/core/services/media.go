package services

import (
	"path"
	"path/filepath"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

// mediaRef is one media file an entity points at.
type mediaRef struct {
	entityID string
	kind     domain.MediaKind

	// path is relative to the content root.
	path string
}

// validateMedia warns about every reference without a file on disk and
// returns how many were missing. It never fails.
func validateMedia(media driven.MediaResolver, warn *Warnings, refs []mediaRef) int {
	seen := make(map[string]bool, len(refs))
	missing := 0
	for _, ref := range refs {
		if seen[ref.path] {
			continue
		}
		seen[ref.path] = true
		if media.Exists(ref.path) {
			continue
		}
		missing++
		warn.Add(ref.entityID, "%s file not found: %s", ref.kind, filepath.Join(media.Root(), filepath.FromSlash(ref.path)))
	}

	if missing > 0 {
		logger.Info("media validation: %d missing files (build continues)", missing)
	} else {
		logger.Debug("all %d media files found", len(seen))
	}
	return missing
}

// stageDirs copies each entity's media subfolders into the publish tree.
// base is the domain directory under both roots, e.g. "projects".
func stageDirs(media driven.MediaResolver, stager driven.MediaStager, base string, ids []string, subdirs ...string) (int, error) {
	copied := 0
	for _, id := range ids {
		entityDir := path.Join(base, id)
		if !media.Exists(entityDir) {
			continue
		}
		for _, sub := range subdirs {
			dir := path.Join(entityDir, sub)
			n, err := stager.CopyDir(dir, dir)
			copied += n
			if err != nil {
				return copied, err
			}
		}
	}
	return copied, nil
}

// stageFiles copies individual files from srcDir into dstDir, skipping
// files that do not exist.
func stageFiles(media driven.MediaResolver, stager driven.MediaStager, srcDir, dstDir string, names []string) (int, error) {
	copied := 0
	for _, name := range names {
		src := path.Join(srcDir, name)
		if !media.Exists(src) {
			continue
		}
		if err := stager.CopyFile(src, path.Join(dstDir, name)); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
