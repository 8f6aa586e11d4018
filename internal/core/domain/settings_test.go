package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBuildSettings(t *testing.T) {
	s := DefaultBuildSettings()

	assert.Equal(t, "content", s.ContentRoot)
	assert.Equal(t, "public", s.PublishRoot)
	assert.Equal(t, "src/data/generated", s.OutputDir)
	assert.Equal(t, DefaultBuildVersion, s.Version)
	assert.Equal(t, "NS Engineering", s.Brand)
	assert.Equal(t, ContentDomains, s.Domains)
	assert.False(t, s.Strict)
}

func TestDefaultBuildSettings_DomainsNotShared(t *testing.T) {
	s := DefaultBuildSettings()
	s.Domains[0] = DomainHero

	assert.Equal(t, DomainProjects, ContentDomains[0])
	assert.Equal(t, DomainProjects, DefaultBuildSettings().Domains[0])
}

func TestBuildSettings_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		domains  []ContentDomain
		domain   ContentDomain
		expected bool
	}{
		{name: "all domains", domains: ContentDomains, domain: DomainELibrary, expected: true},
		{name: "selected", domains: []ContentDomain{DomainTeam}, domain: DomainTeam, expected: true},
		{name: "not selected", domains: []ContentDomain{DomainTeam}, domain: DomainProjects, expected: false},
		{name: "none", domains: nil, domain: DomainHero, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BuildSettings{Domains: tt.domains}
			assert.Equal(t, tt.expected, s.Enabled(tt.domain))
		})
	}
}
