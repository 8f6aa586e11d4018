package services

import (
	"path"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// EquipmentFile is the equipment table, relative to the content root.
const EquipmentFile = "equipment/equipment.csv"

// EquipmentArtifact is the body of equipment.json.
type EquipmentArtifact struct {
	Equipment        []domain.Equipment    `json:"equipment"`
	Categories       map[string]int        `json:"categories"`
	CategoryMetadata []domain.CategoryInfo `json:"categoryMetadata"`
	Metadata         domain.Envelope       `json:"metadata"`
}

// EquipmentParser turns equipment records into validated items.
type EquipmentParser struct {
	media driven.MediaResolver
}

// NewEquipmentParser creates an equipment parser.
func NewEquipmentParser(media driven.MediaResolver) *EquipmentParser {
	return &EquipmentParser{media: media}
}

// ParseAll parses every record in file order, rejecting duplicate ids.
func (p *EquipmentParser) ParseAll(records []domain.Record, warn *Warnings) ([]domain.Equipment, error) {
	items := make([]domain.Equipment, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		item, err := p.Parse(rec, warn)
		if err != nil {
			return nil, &domain.RowError{Domain: string(domain.DomainEquipment), Row: rec.Row, Err: err}
		}
		if seen[item.ID] {
			return nil, &domain.RowError{
				Domain: string(domain.DomainEquipment),
				Row:    rec.Row,
				Err:    &domain.DuplicateIDError{Domain: "equipment", ID: item.ID, Row: rec.Row},
			}
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items, nil
}

// Parse validates one record and resolves its images and spec sheet.
func (p *EquipmentParser) Parse(rec domain.Record, warn *Warnings) (domain.Equipment, error) {
	id, err := domain.RequireNonEmpty(rec.Get("id"), "id", rowID(rec))
	if err != nil {
		return domain.Equipment{}, err
	}
	if err := domain.ValidateID("equipment", id, rec.Row); err != nil {
		return domain.Equipment{}, err
	}

	name, err := domain.RequireNonEmpty(rec.Get("name"), "name", id)
	if err != nil {
		return domain.Equipment{}, err
	}
	rawCategory, err := domain.RequireNonEmpty(rec.Get("category"), "category", id)
	if err != nil {
		return domain.Equipment{}, err
	}
	category := domain.EquipmentCategory(rawCategory)
	if !category.Valid() {
		return domain.Equipment{}, &domain.ValidationError{
			EntityID: id,
			Field:    "category",
			Value:    rawCategory,
			Reason:   "allowed categories: " + joinEquipmentCategories(domain.EquipmentCategories),
		}
	}
	description, err := domain.RequireNonEmpty(rec.Get("description"), "description", id)
	if err != nil {
		return domain.Equipment{}, err
	}

	applications := domain.SplitList(rec.Get("applications"), "")
	if len(applications) == 0 {
		warn.Add(id, "no applications listed")
	}

	images := p.media.Resolve(domain.MediaQuery{
		Dir:      path.Join("equipment", id, "images"),
		Kind:     domain.MediaImages,
		Explicit: domain.SplitList(rec.Get("images"), ""),
		Hero:     domain.Optional(rec.Get("hero_image")),
	})
	reportResolution(warn, id, "images/", images)

	specSheet := domain.Optional(rec.Get("spec_sheet"))
	if specSheet == "" {
		sheets := p.media.Resolve(domain.MediaQuery{
			Dir:  path.Join("equipment", id, "spec-sheet"),
			Kind: domain.MediaDocuments,
		})
		reportResolution(warn, id, "spec-sheet/", sheets)
		specSheet = sheets.First()
	}

	return domain.Equipment{
		ID:           id,
		Name:         name,
		Category:     category,
		Manufacturer: domain.Optional(rec.Get("manufacturer")),
		Model:        domain.Optional(rec.Get("model")),
		KeySpec:      domain.OrDefault(rec.Get("key_spec"), domain.DefaultKeySpec),
		Description:  description,
		Specs: domain.EquipmentSpecs{
			Capacity:  domain.OrDefault(rec.Get("capacity"), domain.DefaultSpecValue),
			Accuracy:  domain.OrDefault(rec.Get("accuracy"), domain.DefaultSpecValue),
			Standards: domain.SplitList(rec.Get("standards"), ""),
			Software:  domain.Optional(rec.Get("software")),
		},
		Applications: applications,
		Media: domain.EquipmentMedia{
			Images:    prefixAll(path.Join(id, "images"), images.Files),
			SpecSheet: prefixOne(path.Join(id, "spec-sheet"), specSheet),
			HeroImage: prefixOne(path.Join(id, "images"), images.Hero),
		},
		Featured: domain.ParseBool(rec.Get("featured")),
	}, nil
}

func equipmentMediaRefs(items []domain.Equipment) []mediaRef {
	var refs []mediaRef
	for _, e := range items {
		for _, img := range e.Media.Images {
			refs = append(refs, mediaRef{entityID: e.ID, kind: domain.MediaImages, path: path.Join("equipment", img)})
		}
		if e.Media.HeroImage != "" {
			refs = append(refs, mediaRef{entityID: e.ID, kind: domain.MediaImages, path: path.Join("equipment", e.Media.HeroImage)})
		}
		if e.Media.SpecSheet != "" {
			refs = append(refs, mediaRef{entityID: e.ID, kind: domain.MediaDocuments, path: path.Join("equipment", e.Media.SpecSheet)})
		}
	}
	return refs
}

func equipmentIDs(items []domain.Equipment) []string {
	ids := make([]string, len(items))
	for i, e := range items {
		ids[i] = e.ID
	}
	return ids
}

func equipmentCategories(items []domain.Equipment) []string {
	out := make([]string, len(items))
	for i, e := range items {
		out[i] = string(e.Category)
	}
	return out
}

func allEquipmentCategoryIDs() []string {
	out := make([]string, len(domain.EquipmentCategories))
	for i, c := range domain.EquipmentCategories {
		out[i] = string(c)
	}
	return out
}
