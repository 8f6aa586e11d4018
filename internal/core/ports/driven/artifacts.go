package driven

import (
	"context"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

// ArtifactWriter serialises generated JSON documents.
type ArtifactWriter interface {
	// Write stores one artifact. Implementations must not leave a
	// partially written artifact behind on failure.
	Write(ctx context.Context, artifact domain.Artifact) error
}
