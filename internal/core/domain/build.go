package domain

import (
	"fmt"
	"time"
)

// ContentDomain names one independently built content area.
type ContentDomain string

// Content domains in build order.
const (
	DomainProjects  ContentDomain = "projects"
	DomainEquipment ContentDomain = "equipment"
	DomainELibrary  ContentDomain = "elibrary"
	DomainTeam      ContentDomain = "team"
	DomainHero      ContentDomain = "hero"
)

// ContentDomains lists every domain in build order.
var ContentDomains = []ContentDomain{
	DomainProjects,
	DomainEquipment,
	DomainELibrary,
	DomainTeam,
	DomainHero,
}

// ParseContentDomain validates a domain name.
func ParseContentDomain(s string) (ContentDomain, error) {
	for _, d := range ContentDomains {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: unknown content domain %q", ErrInvalidInput, s)
}

// DefaultBuildVersion is stamped into every artifact envelope.
const DefaultBuildVersion = "1.0.0"

// Envelope is the metadata block of every generated artifact.
type Envelope struct {
	TotalCount   int    `json:"totalCount"`
	LastUpdated  string `json:"lastUpdated"`
	BuildVersion string `json:"buildVersion"`
}

// NewEnvelope stamps a count with a UTC RFC 3339 timestamp.
func NewEnvelope(total int, now time.Time, version string) Envelope {
	return Envelope{
		TotalCount:   total,
		LastUpdated:  now.UTC().Format(time.RFC3339),
		BuildVersion: version,
	}
}

// Artifact is one JSON document ready to be written.
type Artifact struct {
	// Name is the file name inside the output directory, e.g. "projects.json".
	Name string
	Body any
}

// Warning is a non-fatal data-quality finding. It never aborts a build.
type Warning struct {
	Domain   ContentDomain `json:"domain"`
	EntityID string        `json:"entityId,omitempty"`
	Message  string        `json:"message"`
}

func (w Warning) String() string {
	if w.EntityID == "" {
		return fmt.Sprintf("%s: %s", w.Domain, w.Message)
	}
	return fmt.Sprintf("%s %s: %s", w.Domain, w.EntityID, w.Message)
}

// DomainReport summarises one domain of a build.
type DomainReport struct {
	Domain       ContentDomain  `json:"domain"`
	Entities     int            `json:"entities"`
	Featured     int            `json:"featured"`
	Counts       map[string]int `json:"counts,omitempty"`
	MissingMedia int            `json:"missingMedia"`
	CopiedMedia  int            `json:"copiedMedia"`
	Artifacts    []string       `json:"artifacts,omitempty"`
	Warnings     []Warning      `json:"warnings"`
}

// BuildReport summarises a whole build.
type BuildReport struct {
	RunID      string         `json:"runId"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	DryRun     bool           `json:"dryRun"`
	Domains    []DomainReport `json:"domains"`
}

// WarningCount totals warnings across domains.
func (r *BuildReport) WarningCount() int {
	n := 0
	for i := range r.Domains {
		n += len(r.Domains[i].Warnings)
	}
	return n
}

// Duration is the wall time of the build.
func (r *BuildReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
