package services

import (
	"errors"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// CountBy counts values. Every id in seed starts at zero.
func CountBy(values []string, seed ...string) map[string]int {
	counts := make(map[string]int, len(seed))
	for _, id := range seed {
		counts[id] = 0
	}
	for _, v := range values {
		counts[v]++
	}
	return counts
}

// UsedIDs returns the distinct values in ascending order.
func UsedIDs(values []string) []string {
	return domain.NewCategorySet(values).Sorted()
}

// MergeCategories builds metadata for ids, in the given order. Each field
// comes from the override row, then the built-in row, then style.
func MergeCategories(ids []string, builtin, overrides []domain.CategoryInfo, style domain.StyleDefaults) []domain.CategoryInfo {
	base := indexCategories(builtin)
	over := indexCategories(overrides)

	out := make([]domain.CategoryInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, style.Merge(id, base[id], over[id], FormatLabel))
	}
	return out
}

// MergeSections builds metadata for every section, sorted by order.
// Sections with equal order keep enum order.
func MergeSections(overrides []domain.SectionInfo) []domain.SectionInfo {
	base := make(map[domain.Section]domain.SectionInfo, len(domain.BuiltinSections))
	for _, s := range domain.BuiltinSections {
		base[s.ID] = s
	}
	over := make(map[domain.Section]domain.SectionInfo, len(overrides))
	for _, s := range overrides {
		over[s.ID] = s
	}

	out := make([]domain.SectionInfo, 0, len(domain.Sections))
	for _, id := range domain.Sections {
		b := base[id]
		info := b
		info.ID = id
		if o, ok := over[id]; ok {
			info.Label = firstNonEmpty(o.Label, b.Label, FormatLabel(string(id)))
			info.Description = firstNonEmpty(o.Description, b.Description)
			info.Icon = firstNonEmpty(o.Icon, b.Icon, domain.DefaultSectionIcon)
			info.Order = o.Order
		}
		out = append(out, info)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func indexCategories(table []domain.CategoryInfo) map[string]domain.CategoryInfo {
	m := make(map[string]domain.CategoryInfo, len(table))
	for _, c := range table {
		m[c.ID] = c
	}
	return m
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinSections(sections []domain.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinEquipmentCategories(categories []domain.EquipmentCategory) string {
	parts := make([]string, len(categories))
	for i, c := range categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

// requireNumber parses a required number and names the owning entity
// in the error.
func requireNumber(value, field, entityID string) (float64, error) {
	n, err := domain.ParseRequiredNumber(value, field)
	if err == nil {
		return n, nil
	}
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		missing.EntityID = entityID
	}
	var invalid *domain.InvalidNumberError
	if errors.As(err, &invalid) {
		invalid.EntityID = entityID
	}
	return 0, err
}

// rowID names a record by position when its id cannot be trusted.
func rowID(rec domain.Record) string {
	return "row " + strconv.Itoa(rec.Row)
}

func rowError(source string, rec domain.Record, err error) error {
	return &domain.RowError{Domain: filepath.Base(source), Row: rec.Row, Err: err}
}

// contentPath joins a content-relative path onto the resolver's root.
func contentPath(media driven.MediaResolver, rel string) string {
	return filepath.Join(media.Root(), filepath.FromSlash(rel))
}
