package driven

import "github.com/ns-engineering/contentbuild/internal/core/domain"

// BuildMetrics records build outcomes. Optional: the orchestrator accepts nil.
type BuildMetrics interface {
	// ObserveDomain records the outcome of one content domain.
	ObserveDomain(report domain.DomainReport)

	// ObserveBuild records the outcome of a whole build; err is nil on success.
	ObserveBuild(report *domain.BuildReport, err error)
}
