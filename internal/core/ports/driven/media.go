package driven

import "github.com/ns-engineering/contentbuild/internal/core/domain"

// MediaResolver looks up media files under the content root.
// All paths are relative to that root and use forward slashes.
type MediaResolver interface {
	// Resolve applies CSV override, directory scan and hero selection.
	// It never fails: disk errors are reported in ResolvedMedia.ScanErr.
	Resolve(q domain.MediaQuery) domain.ResolvedMedia

	// List returns the sorted, filtered filenames of a directory.
	// A missing directory yields an empty list and no error.
	List(dir string, kind domain.MediaKind) ([]string, error)

	// Exists reports whether a file or directory exists.
	Exists(path string) bool

	// Root returns the content root.
	Root() string
}

// MediaStager copies media from the content root into the publish tree.
type MediaStager interface {
	// CopyDir recursively copies src (content-relative) to dst
	// (publish-relative), overwriting existing files.
	// Returns the number of files copied.
	CopyDir(src, dst string) (int, error)

	// CopyFile copies one file, overwriting the destination.
	CopyFile(src, dst string) error

	// Root returns the publish root.
	Root() string
}
