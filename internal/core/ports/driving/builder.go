package driving

import (
	"context"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

// Builder runs the content pipeline across all enabled domains.
type Builder interface {
	// Build reads, validates, stages and serialises every domain.
	// A fatal error aborts the whole build and nothing is written.
	Build(ctx context.Context) (*domain.BuildReport, error)

	// Validate reads and validates every domain without staging media
	// or writing artifacts.
	Validate(ctx context.Context) (*domain.BuildReport, error)
}
