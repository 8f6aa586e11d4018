package prometheus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

func readTextfile(t *testing.T, m *Metrics) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contentbuild.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMetrics_ObserveDomain(t *testing.T) {
	m := New()

	m.ObserveDomain(domain.DomainReport{
		Domain:       domain.DomainProjects,
		Entities:     12,
		Featured:     3,
		MissingMedia: 2,
		CopiedMedia:  40,
		Warnings:     []domain.Warning{{Domain: domain.DomainProjects, Message: "x"}},
	})

	out := readTextfile(t, m)
	assert.Contains(t, out, `contentbuild_entities{domain="projects"} 12`)
	assert.Contains(t, out, `contentbuild_featured_entities{domain="projects"} 3`)
	assert.Contains(t, out, `contentbuild_warnings{domain="projects"} 1`)
	assert.Contains(t, out, `contentbuild_missing_media{domain="projects"} 2`)
	assert.Contains(t, out, `contentbuild_copied_media_files{domain="projects"} 40`)
}

func TestMetrics_ObserveDomain_LastBuildWins(t *testing.T) {
	m := New()

	m.ObserveDomain(domain.DomainReport{Domain: domain.DomainTeam, Entities: 5})
	m.ObserveDomain(domain.DomainReport{Domain: domain.DomainTeam, Entities: 7})

	out := readTextfile(t, m)
	assert.Contains(t, out, `contentbuild_entities{domain="team"} 7`)
	assert.NotContains(t, out, `contentbuild_entities{domain="team"} 5`)
}

func TestMetrics_ObserveBuild(t *testing.T) {
	m := New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.BuildReport{StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond)}

	m.ObserveBuild(report, nil)
	m.ObserveBuild(report, nil)
	m.ObserveBuild(nil, errors.New("boom"))

	out := readTextfile(t, m)
	assert.Contains(t, out, `contentbuild_builds_total{status="success"} 2`)
	assert.Contains(t, out, `contentbuild_builds_total{status="failure"} 1`)
	assert.Contains(t, out, `contentbuild_build_duration_seconds 1.5`)
	assert.Contains(t, out, "contentbuild_last_build_timestamp_seconds 1.70406")
}

func TestMetrics_WriteTextfile_BadPath(t *testing.T) {
	err := New().WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))

	assert.Error(t, err)
}
