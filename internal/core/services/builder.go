package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driving"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

// Ensure BuildOrchestrator implements the interface.
var _ driving.Builder = (*BuildOrchestrator)(nil)

// Generated artifact names.
const (
	ProjectsArtifactName   = "projects.json"
	CategoriesArtifactName = "categories.json"
	EquipmentArtifactName  = "equipment.json"
	ELibraryArtifactName   = "elibrary.json"
	TeamArtifactName       = "team.json"
	HeroArtifactName       = "hero-carousel.json"
)

// preparedDomain is a domain that parsed and validated cleanly and is
// ready to stage and write.
type preparedDomain struct {
	report    domain.DomainReport
	artifacts []domain.Artifact
	stage     func() (int, error)
	warn      *Warnings
}

// BuildOrchestrator runs every enabled content domain through
// read, parse, validate, stage and write.
type BuildOrchestrator struct {
	settings domain.BuildSettings
	reader   driven.RecordReader
	media    driven.MediaResolver
	stager   driven.MediaStager
	writer   driven.ArtifactWriter
	metrics  driven.BuildMetrics
	style    domain.StyleDefaults

	now      func() time.Time
	newRunID func() string
}

// NewBuildOrchestrator creates a new build orchestrator.
// metrics is optional and may be nil.
func NewBuildOrchestrator(
	settings domain.BuildSettings,
	reader driven.RecordReader,
	media driven.MediaResolver,
	stager driven.MediaStager,
	writer driven.ArtifactWriter,
	metrics driven.BuildMetrics,
) *BuildOrchestrator {
	return &BuildOrchestrator{
		settings: settings,
		reader:   reader,
		media:    media,
		stager:   stager,
		writer:   writer,
		metrics:  metrics,
		style:    domain.DefaultStyle,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Build runs the full pipeline. Every domain is parsed and validated
// before any media is copied or any artifact is written, so a fatal error
// leaves the output untouched.
func (o *BuildOrchestrator) Build(ctx context.Context) (*domain.BuildReport, error) {
	report, err := o.run(ctx, false)
	if o.metrics != nil {
		o.metrics.ObserveBuild(report, err)
	}
	return report, err
}

// Validate parses and validates every domain without staging or writing.
func (o *BuildOrchestrator) Validate(ctx context.Context) (*domain.BuildReport, error) {
	return o.run(ctx, true)
}

func (o *BuildOrchestrator) run(ctx context.Context, dryRun bool) (*domain.BuildReport, error) {
	report := &domain.BuildReport{
		RunID:     o.newRunID(),
		StartedAt: o.now(),
		DryRun:    dryRun,
		Domains:   []domain.DomainReport{},
	}
	stamp := report.StartedAt

	var prepared []*preparedDomain
	finish := func(err error) (*domain.BuildReport, error) {
		for _, p := range prepared {
			p.report.Warnings = p.warn.List()
			report.Domains = append(report.Domains, p.report)
		}
		report.FinishedAt = o.now()
		return report, err
	}

	// 1. Read, parse, validate and aggregate every domain
	for _, d := range domain.ContentDomains {
		if !o.settings.Enabled(d) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		logger.Section(sectionTitle(d))

		p, err := o.prepare(d, stamp)
		if err != nil {
			return finish(fmt.Errorf("%s: %w", d, err))
		}
		prepared = append(prepared, p)
	}

	if dryRun {
		return finish(nil)
	}
	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	// 2. Stage media and write artifacts. Once writing starts it is not
	// interrupted by cancellation.
	writeCtx := context.WithoutCancel(ctx)
	for _, p := range prepared {
		copied, err := p.stage()
		p.report.CopiedMedia = copied
		if err != nil {
			return finish(fmt.Errorf("%s: stage media: %w", p.report.Domain, err))
		}
		logger.Info("copied %d %s media files", copied, p.report.Domain)
	}
	for _, p := range prepared {
		for _, a := range p.artifacts {
			if err := o.writer.Write(writeCtx, a); err != nil {
				return finish(fmt.Errorf("%s: %w", p.report.Domain, err))
			}
			p.report.Artifacts = append(p.report.Artifacts, a.Name)
			logger.Info("generated %s", a.Name)
		}
		if o.metrics != nil {
			o.metrics.ObserveDomain(domainSnapshot(p))
		}
	}
	return finish(nil)
}

func (o *BuildOrchestrator) prepare(d domain.ContentDomain, stamp time.Time) (*preparedDomain, error) {
	switch d {
	case domain.DomainProjects:
		return o.prepareProjects(stamp)
	case domain.DomainEquipment:
		return o.prepareEquipment(stamp)
	case domain.DomainELibrary:
		return o.prepareELibrary(stamp)
	case domain.DomainTeam:
		return o.prepareTeam(stamp)
	case domain.DomainHero:
		return o.prepareHero(stamp)
	default:
		return nil, fmt.Errorf("%w: unknown content domain %q", domain.ErrInvalidInput, d)
	}
}

func (o *BuildOrchestrator) prepareProjects(stamp time.Time) (*preparedDomain, error) {
	warn := NewWarnings(domain.DomainProjects)

	overrides, err := LoadCategoryOverrides(o.reader, contentPath(o.media, ProjectCategoriesFile), projectCategoryID)
	if !usableOverrides(err, ProjectCategoriesFile, warn) {
		overrides = nil
	}
	set := domain.NewCategorySet(domain.CategoryIDs(domain.BuiltinProjectCategories), domain.CategoryIDs(overrides))

	records, err := o.reader.Read(contentPath(o.media, ProjectsFile))
	if err != nil {
		return nil, err
	}
	logger.Info("found %d records in %s", len(records), ProjectsFile)

	projects, err := NewProjectParser(o.media, set).ParseAll(records, warn)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed %d projects", len(projects))

	missing := validateMedia(o.media, warn, projectMediaRefs(projects))

	used := projectCategories(projects)
	counts := CountBy(used, set.Sorted()...)
	metadata := MergeCategories(UsedIDs(used), domain.BuiltinProjectCategories, overrides, o.style)

	featured := 0
	for _, p := range projects {
		if p.Featured {
			featured++
		}
	}

	return &preparedDomain{
		report: domain.DomainReport{
			Domain:       domain.DomainProjects,
			Entities:     len(projects),
			Featured:     featured,
			Counts:       counts,
			MissingMedia: missing,
		},
		artifacts: []domain.Artifact{
			{Name: ProjectsArtifactName, Body: ProjectsArtifact{
				Projects:         projects,
				Categories:       counts,
				CategoryMetadata: metadata,
				Metadata:         domain.NewEnvelope(len(projects), stamp, o.settings.Version),
			}},
			{Name: CategoriesArtifactName, Body: metadata},
		},
		stage: func() (int, error) {
			return stageDirs(o.media, o.stager, "projects", projectIDs(projects), "images", "pdfs")
		},
		warn: warn,
	}, nil
}

func (o *BuildOrchestrator) prepareEquipment(stamp time.Time) (*preparedDomain, error) {
	warn := NewWarnings(domain.DomainEquipment)

	overrides, err := LoadCategoryOverrides(o.reader, contentPath(o.media, EquipmentCategoriesFile), equipmentCategoryID)
	if !usableOverrides(err, EquipmentCategoriesFile, warn) {
		overrides = nil
	}

	records, err := o.reader.Read(contentPath(o.media, EquipmentFile))
	if err != nil {
		return nil, err
	}
	logger.Info("found %d records in %s", len(records), EquipmentFile)

	items, err := NewEquipmentParser(o.media).ParseAll(records, warn)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed %d equipment items", len(items))

	missing := validateMedia(o.media, warn, equipmentMediaRefs(items))

	counts := CountBy(equipmentCategories(items))
	metadata := MergeCategories(allEquipmentCategoryIDs(), domain.BuiltinEquipmentCategories, overrides, o.style)

	featured := 0
	for _, e := range items {
		if e.Featured {
			featured++
		}
	}

	return &preparedDomain{
		report: domain.DomainReport{
			Domain:       domain.DomainEquipment,
			Entities:     len(items),
			Featured:     featured,
			Counts:       counts,
			MissingMedia: missing,
		},
		artifacts: []domain.Artifact{
			{Name: EquipmentArtifactName, Body: EquipmentArtifact{
				Equipment:        items,
				Categories:       counts,
				CategoryMetadata: metadata,
				Metadata:         domain.NewEnvelope(len(items), stamp, o.settings.Version),
			}},
		},
		stage: func() (int, error) {
			return stageDirs(o.media, o.stager, "equipment", equipmentIDs(items), "images", "spec-sheet")
		},
		warn: warn,
	}, nil
}

func (o *BuildOrchestrator) prepareELibrary(stamp time.Time) (*preparedDomain, error) {
	warn := NewWarnings(domain.DomainELibrary)

	overrides, err := LoadSectionOverrides(o.reader, contentPath(o.media, SectionsFile))
	if !usableOverrides(err, SectionsFile, warn) {
		overrides = nil
	}

	records, err := o.reader.Read(contentPath(o.media, ELibraryFile))
	if err != nil {
		return nil, err
	}
	logger.Info("found %d records in %s", len(records), ELibraryFile)

	docs, err := NewDocumentParser(o.media).ParseAll(records, warn)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed %d documents", len(docs))

	missing := validateMedia(o.media, warn, documentMediaRefs(docs))

	counts := CountBy(documentSections(docs))
	sections := MergeSections(overrides)

	featured := 0
	for _, d := range docs {
		if d.Featured {
			featured++
		}
	}

	return &preparedDomain{
		report: domain.DomainReport{
			Domain:       domain.DomainELibrary,
			Entities:     len(docs),
			Featured:     featured,
			Counts:       counts,
			MissingMedia: missing,
		},
		artifacts: []domain.Artifact{
			{Name: ELibraryArtifactName, Body: ELibraryArtifact{
				Documents:   docs,
				Sections:    counts,
				SectionInfo: sections,
				Metadata:    domain.NewEnvelope(len(docs), stamp, o.settings.Version),
			}},
		},
		stage: func() (int, error) {
			return stageDirs(o.media, o.stager, "elibrary", documentIDs(docs), "files")
		},
		warn: warn,
	}, nil
}

func (o *BuildOrchestrator) prepareTeam(stamp time.Time) (*preparedDomain, error) {
	warn := NewWarnings(domain.DomainTeam)

	records, err := o.reader.Read(contentPath(o.media, TeamFile))
	if err != nil {
		return nil, err
	}

	members, err := NewTeamParser(o.media).ParseAll(records, warn)
	if err != nil {
		return nil, err
	}
	withImages := countWithImages(members)
	logger.Info("parsed %d team members (%d with images, %d without)", len(members), withImages, len(members)-withImages)

	missing := validateMedia(o.media, warn, teamMediaRefs(members))

	return &preparedDomain{
		report: domain.DomainReport{
			Domain:       domain.DomainTeam,
			Entities:     len(members),
			Counts:       map[string]int{"withImages": withImages, "withoutImages": len(members) - withImages},
			MissingMedia: missing,
		},
		artifacts: []domain.Artifact{
			{Name: TeamArtifactName, Body: TeamArtifact{
				Members:  members,
				Metadata: domain.NewEnvelope(len(members), stamp, o.settings.Version),
			}},
		},
		stage: func() (int, error) {
			return stageFiles(o.media, o.stager, TeamImagesDir, TeamPublicDir, teamPortraits(members))
		},
		warn: warn,
	}, nil
}

func (o *BuildOrchestrator) prepareHero(stamp time.Time) (*preparedDomain, error) {
	warn := NewWarnings(domain.DomainHero)

	images := NewHeroCarousel(o.reader, o.media, o.settings.Brand).Images(warn)
	logger.Info("configured %d hero carousel images", len(images))

	return &preparedDomain{
		report: domain.DomainReport{
			Domain:   domain.DomainHero,
			Entities: len(images),
		},
		artifacts: []domain.Artifact{
			{Name: HeroArtifactName, Body: HeroArtifact{
				Images:   images,
				Metadata: domain.NewEnvelope(len(images), stamp, o.settings.Version),
			}},
		},
		stage: func() (int, error) {
			return stageFiles(o.media, o.stager, HeroImagesDir, HeroPublicDir, heroFilenames(images))
		},
		warn: warn,
	}, nil
}

// domainSnapshot is the report of p with its warnings attached.
func domainSnapshot(p *preparedDomain) domain.DomainReport {
	r := p.report
	r.Warnings = p.warn.List()
	return r
}

func sectionTitle(d domain.ContentDomain) string {
	switch d {
	case domain.DomainELibrary:
		return "eLibrary"
	case domain.DomainHero:
		return "Hero Carousel"
	default:
		return FormatLabel(string(d))
	}
}
