package services

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Team content locations.
const (
	TeamFile      = "team/team.csv"
	TeamImagesDir = "team/images"
	TeamPublicDir = "team"
)

// TeamArtifact is the body of team.json.
type TeamArtifact struct {
	Members  []domain.TeamMember `json:"members"`
	Metadata domain.Envelope     `json:"metadata"`
}

// TeamParser turns team records into members with matched portraits.
type TeamParser struct {
	media driven.MediaResolver
}

// NewTeamParser creates a team parser.
func NewTeamParser(media driven.MediaResolver) *TeamParser {
	return &TeamParser{media: media}
}

// ParseAll parses every record and sorts members by order. Members whose
// names slug to the same value are duplicates. An empty table is fatal.
func (p *TeamParser) ParseAll(records []domain.Record, warn *Warnings) ([]domain.TeamMember, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: team CSV has no members", domain.ErrEmptyCollection)
	}

	portraits, err := p.media.List(TeamImagesDir, domain.MediaPortraits)
	if err != nil {
		warn.Add("", "could not read %s: %v", TeamImagesDir, err)
	}

	members := make([]domain.TeamMember, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		member, err := p.Parse(rec, portraits)
		if err != nil {
			return nil, &domain.RowError{Domain: string(domain.DomainTeam), Row: rec.Row, Err: err}
		}
		if slug := member.Slug(); slug != "" {
			if seen[slug] {
				return nil, &domain.RowError{
					Domain: string(domain.DomainTeam),
					Row:    rec.Row,
					Err:    &domain.DuplicateIDError{Domain: "team member", ID: slug, Row: rec.Row},
				}
			}
			seen[slug] = true
		}
		members = append(members, member)
	}

	sort.SliceStable(members, func(i, j int) bool { return members[i].Order < members[j].Order })
	return members, nil
}

// Parse validates one record and matches it against the portrait files.
func (p *TeamParser) Parse(rec domain.Record, portraits []string) (domain.TeamMember, error) {
	name, err := domain.RequireNonEmpty(rec.Get("name"), "name", rowID(rec))
	if err != nil {
		return domain.TeamMember{}, err
	}

	fields := make(map[string]string, 3)
	for _, field := range []string{"role", "education", "experience"} {
		v, err := domain.RequireNonEmpty(rec.Get(field), field, name)
		if err != nil {
			return domain.TeamMember{}, err
		}
		fields[field] = v
	}
	order, err := requireNumber(rec.Get("order"), "order", name)
	if err != nil {
		return domain.TeamMember{}, err
	}

	member := domain.TeamMember{
		Name:       name,
		Role:       fields["role"],
		Education:  fields["education"],
		Experience: fields["experience"],
		Order:      order,
	}
	if file := MatchPortrait(member.Slug(), portraits); file != "" {
		member.Image = "/" + path.Join(TeamPublicDir, file)
		member.HasImage = true
	}
	return member, nil
}

// MatchPortrait picks the portrait for slug: an exact "<slug><ext>" in
// extension preference order, else the first file whose lowercased name
// contains the slug. files must be sorted.
func MatchPortrait(slug string, files []string) string {
	if slug == "" {
		return ""
	}
	for _, ext := range domain.MediaPortraits.Extensions() {
		want := slug + ext
		for _, f := range files {
			if f == want {
				return f
			}
		}
	}
	for _, f := range files {
		if strings.Contains(strings.ToLower(f), slug) {
			return f
		}
	}
	return ""
}

func teamPortraits(members []domain.TeamMember) []string {
	var files []string
	for _, m := range members {
		if m.HasImage {
			files = append(files, path.Base(m.Image))
		}
	}
	return files
}

func teamMediaRefs(members []domain.TeamMember) []mediaRef {
	var refs []mediaRef
	for _, m := range members {
		if m.HasImage {
			refs = append(refs, mediaRef{entityID: m.Name, kind: domain.MediaPortraits, path: path.Join(TeamImagesDir, path.Base(m.Image))})
		}
	}
	return refs
}

func countWithImages(members []domain.TeamMember) int {
	n := 0
	for _, m := range members {
		if m.HasImage {
			n++
		}
	}
	return n
}
