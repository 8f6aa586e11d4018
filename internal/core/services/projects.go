package services

import (
	"math"
	"path"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

// ProjectsFile is the projects table, relative to the content root.
const ProjectsFile = "projects/projects.csv"

// ProjectsArtifact is the body of projects.json.
type ProjectsArtifact struct {
	Projects         []domain.Project      `json:"projects"`
	Categories       map[string]int        `json:"categories"`
	CategoryMetadata []domain.CategoryInfo `json:"categoryMetadata"`
	Metadata         domain.Envelope       `json:"metadata"`
}

// ProjectParser turns project records into validated projects.
type ProjectParser struct {
	media      driven.MediaResolver
	categories domain.CategorySet
}

// NewProjectParser creates a parser accepting the given category set.
func NewProjectParser(media driven.MediaResolver, categories domain.CategorySet) *ProjectParser {
	return &ProjectParser{media: media, categories: categories}
}

// ParseAll parses every record in file order. The first invalid record
// or duplicate id aborts with an error naming its row.
func (p *ProjectParser) ParseAll(records []domain.Record, warn *Warnings) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		project, err := p.Parse(rec, warn)
		if err != nil {
			return nil, &domain.RowError{Domain: string(domain.DomainProjects), Row: rec.Row, Err: err}
		}
		if seen[project.ID] {
			return nil, &domain.RowError{
				Domain: string(domain.DomainProjects),
				Row:    rec.Row,
				Err:    &domain.DuplicateIDError{Domain: "project", ID: project.ID, Row: rec.Row},
			}
		}
		seen[project.ID] = true
		projects = append(projects, project)
	}
	return projects, nil
}

// Parse validates one record and resolves its media.
func (p *ProjectParser) Parse(rec domain.Record, warn *Warnings) (domain.Project, error) {
	id, err := domain.RequireNonEmpty(rec.Get("id"), "id", rowID(rec))
	if err != nil {
		return domain.Project{}, err
	}
	if err := domain.ValidateID("project", id, rec.Row); err != nil {
		return domain.Project{}, err
	}

	title, err := domain.RequireNonEmpty(rec.Get("title"), "title", id)
	if err != nil {
		return domain.Project{}, err
	}
	client, err := domain.RequireNonEmpty(rec.Get("client"), "client", id)
	if err != nil {
		return domain.Project{}, err
	}
	category, err := domain.RequireNonEmpty(rec.Get("category"), "category", id)
	if err != nil {
		return domain.Project{}, err
	}
	if err := p.validateCategory(category, id); err != nil {
		return domain.Project{}, err
	}
	year, err := parseYear(rec.Get("year"), id)
	if err != nil {
		return domain.Project{}, err
	}
	locationName, err := domain.RequireNonEmpty(rec.Get("location_name"), "location_name", id)
	if err != nil {
		return domain.Project{}, err
	}

	lat, err := requireNumber(rec.Get("coordinates_lat"), "coordinates_lat", id)
	if err != nil {
		return domain.Project{}, err
	}
	lng, err := requireNumber(rec.Get("coordinates_lng"), "coordinates_lng", id)
	if err != nil {
		return domain.Project{}, err
	}
	coords := domain.Coordinates{Lat: lat, Lng: lng}
	if err := domain.ValidateCoordinates(coords, id); err != nil {
		return domain.Project{}, err
	}

	scope := domain.SplitList(rec.Get("scope"), "")
	if len(scope) == 0 {
		warn.Add(id, "no scope items")
	}

	images := p.media.Resolve(domain.MediaQuery{
		Dir:      path.Join("projects", id, "images"),
		Kind:     domain.MediaImages,
		Explicit: domain.SplitList(rec.Get("images"), ""),
		Hero:     domain.Optional(rec.Get("hero_image")),
	})
	reportResolution(warn, id, "images/", images)

	return domain.Project{
		ID:       id,
		Title:    title,
		Client:   client,
		Category: category,
		Year:     year,
		Location: domain.ProjectLocation{
			Name:        locationName,
			District:    domain.Optional(rec.Get("location_district")),
			Coordinates: coords,
		},
		Scope: scope,
		Media: domain.ProjectMedia{
			Images:    prefixAll(path.Join(id, "images"), images.Files),
			PDFs:      prefixAll(path.Join(id, "pdfs"), domain.SplitList(rec.Get("pdfs"), "")),
			HeroImage: prefixOne(path.Join(id, "images"), images.Hero),
		},
		Featured: domain.ParseBool(rec.Get("featured")),
	}, nil
}

func (p *ProjectParser) validateCategory(category, id string) error {
	if !domain.IsKebabCase(category) {
		return &domain.ValidationError{
			EntityID: id,
			Field:    "category",
			Value:    category,
			Reason:   `categories must be lowercase kebab-case (e.g. "pile-testing")`,
		}
	}
	if !p.categories.Contains(category) {
		return &domain.ValidationError{
			EntityID: id,
			Field:    "category",
			Value:    category,
			Reason:   "known categories: " + p.categories.String(),
		}
	}
	return nil
}

// parseYear accepts whole numbers only.
func parseYear(value, id string) (int, error) {
	n, err := requireNumber(value, "year", id)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || n < 0 || n > math.MaxInt32 {
		return 0, &domain.ValidationError{
			EntityID: id,
			Field:    "year",
			Value:    value,
			Reason:   "must be a whole number",
			Kind:     domain.ErrInvalidNumber,
		}
	}
	return int(n), nil
}

// projectMediaRefs lists every media file the projects point at.
func projectMediaRefs(projects []domain.Project) []mediaRef {
	var refs []mediaRef
	for _, p := range projects {
		for _, img := range p.Media.Images {
			refs = append(refs, mediaRef{entityID: p.ID, kind: domain.MediaImages, path: path.Join("projects", img)})
		}
		if p.Media.HeroImage != "" {
			refs = append(refs, mediaRef{entityID: p.ID, kind: domain.MediaImages, path: path.Join("projects", p.Media.HeroImage)})
		}
		for _, pdf := range p.Media.PDFs {
			refs = append(refs, mediaRef{entityID: p.ID, kind: domain.MediaDocuments, path: path.Join("projects", pdf)})
		}
	}
	return refs
}

func projectIDs(projects []domain.Project) []string {
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func projectCategories(projects []domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Category
	}
	return out
}

// reportResolution turns resolver diagnostics into warnings.
func reportResolution(warn *Warnings, id, dir string, res domain.ResolvedMedia) {
	if res.FromCSV {
		logger.Debug("%s: using %d %s files listed in CSV", id, len(res.Files), dir)
	}
	if res.ScanErr != nil {
		warn.Add(id, "could not read %s: %v", dir, res.ScanErr)
	}
	if res.HeroMissing {
		if res.Hero != "" {
			warn.Add(id, "hero_image not found in %s, using %s", dir, res.Hero)
		} else {
			warn.Add(id, "hero_image not found in %s", dir)
		}
	}
}

func prefixAll(dir string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = path.Join(dir, name)
	}
	return out
}

func prefixOne(dir, name string) string {
	if name == "" {
		return ""
	}
	return path.Join(dir, name)
}
