package driven

import "github.com/ns-engineering/contentbuild/internal/core/domain"

// RecordReader reads a delimited content file into raw records.
type RecordReader interface {
	// Read parses the file at path. The first row is the header.
	// Errors are *domain.ReadError matching domain.ErrIO or domain.ErrParse;
	// a missing file also matches fs.ErrNotExist.
	Read(path string) ([]domain.Record, error)
}
