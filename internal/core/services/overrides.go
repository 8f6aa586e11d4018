package services

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Override tables, relative to the content root.
const (
	ProjectCategoriesFile   = "categories/categories.csv"
	EquipmentCategoriesFile = "equipment/categories.csv"
	SectionsFile            = "elibrary/sections.csv"
)

// LoadCategoryOverrides reads a category override table. validID decides
// which ids the table may declare. A missing file yields an error
// matching fs.ErrNotExist.
func LoadCategoryOverrides(reader driven.RecordReader, path string, validID func(string) error) ([]domain.CategoryInfo, error) {
	records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CategoryInfo, 0, len(records))
	for _, rec := range records {
		id := rec.Get("id")
		if id == "" {
			return nil, rowError(path, rec, &domain.MissingFieldError{Field: "id", EntityID: rowID(rec)})
		}
		if err := validID(id); err != nil {
			return nil, rowError(path, rec, err)
		}
		color := rec.Get("color")
		if color != "" && !domain.IsHexColor(color) {
			return nil, rowError(path, rec, &domain.ValidationError{
				EntityID: id,
				Field:    "color",
				Value:    color,
				Reason:   `must be 6-digit hex (e.g. "#7c3aed")`,
			})
		}

		out = append(out, domain.CategoryInfo{
			ID:           id,
			Label:        rec.Get("label"),
			Color:        color,
			GradientFrom: rec.Get("gradientFrom"),
			GradientTo:   rec.Get("gradientTo"),
			Description:  rec.Get("description"),
		})
	}
	return out, nil
}

// LoadSectionOverrides reads the eLibrary section table. A blank or
// non-integer order falls back to the row's position.
func LoadSectionOverrides(reader driven.RecordReader, path string) ([]domain.SectionInfo, error) {
	records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SectionInfo, 0, len(records))
	for i, rec := range records {
		id := domain.Section(rec.Get("id"))
		if !id.Valid() {
			return nil, rowError(path, rec, &domain.ValidationError{
				EntityID: rowID(rec),
				Field:    "section",
				Value:    string(id),
				Reason:   "allowed sections: " + joinSections(domain.Sections),
			})
		}

		order, err := strconv.Atoi(rec.Get("order"))
		if err != nil {
			order = i + 1
		}
		out = append(out, domain.SectionInfo{
			ID:          id,
			Label:       rec.Get("label"),
			Description: rec.Get("description"),
			Icon:        rec.Get("icon"),
			Order:       order,
		})
	}
	return out, nil
}

// usableOverrides collapses an override load error to "use the built-in
// table", recording why as a warning.
func usableOverrides(err error, path string, warn *Warnings) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist):
		warn.Add("", "%s not found, using built-in table", filepath.Base(path))
	default:
		warn.Add("", "invalid %s, using built-in table: %v", filepath.Base(path), err)
	}
	return false
}

func projectCategoryID(id string) error {
	if !domain.IsKebabCase(id) {
		return &domain.ValidationError{
			EntityID: id,
			Field:    "category id",
			Value:    id,
			Reason:   `must be lowercase kebab-case (e.g. "pile-testing")`,
		}
	}
	return nil
}

func equipmentCategoryID(id string) error {
	if !domain.EquipmentCategory(id).Valid() {
		return &domain.ValidationError{
			EntityID: id,
			Field:    "category id",
			Value:    id,
			Reason:   "allowed categories: " + joinEquipmentCategories(domain.EquipmentCategories),
		}
	}
	return nil
}
