package domain

import (
	"sort"
	"strings"
)

// CategoryInfo is display metadata for a project or equipment category.
type CategoryInfo struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Color        string `json:"color"`
	GradientFrom string `json:"gradientFrom"`
	GradientTo   string `json:"gradientTo"`
	Description  string `json:"description"`
}

// StyleDefaults is the styling used when neither an override nor a
// built-in entry sets a field. One table is shared by every domain.
type StyleDefaults struct {
	Color        string
	GradientFrom string
	GradientTo   string
}

// DefaultStyle is the purple house style.
var DefaultStyle = StyleDefaults{
	Color:        "#9333ea",
	GradientFrom: "purple-500",
	GradientTo:   "purple-700",
}

// Merge layers an override row onto a built-in entry, then fills remaining
// blanks from the defaults. Blank override fields mean "unset". label
// formats the id when no label is set anywhere.
func (d StyleDefaults) Merge(id string, base, override CategoryInfo, label func(string) string) CategoryInfo {
	pick := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}
	return CategoryInfo{
		ID:           id,
		Label:        pick(override.Label, base.Label, label(id)),
		Color:        pick(override.Color, base.Color, d.Color),
		GradientFrom: pick(override.GradientFrom, base.GradientFrom, d.GradientFrom),
		GradientTo:   pick(override.GradientTo, base.GradientTo, d.GradientTo),
		Description:  pick(override.Description, base.Description),
	}
}

// CategorySet is the set of category ids accepted for projects.
// It is loaded once at startup from the built-in table and overrides.
type CategorySet map[string]struct{}

// NewCategorySet builds a set from any number of id lists.
func NewCategorySet(idLists ...[]string) CategorySet {
	s := make(CategorySet)
	for _, ids := range idLists {
		for _, id := range ids {
			s[id] = struct{}{}
		}
	}
	return s
}

// Contains reports membership.
func (s CategorySet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s CategorySet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String lists the ids for error messages.
func (s CategorySet) String() string {
	return strings.Join(s.Sorted(), ", ")
}

// BuiltinProjectCategories is the project category table used when no
// override file is present.
var BuiltinProjectCategories = []CategoryInfo{
	{ID: "pile-testing"},
	{ID: "tunnel-road"},
	{ID: "hydropower"},
	{ID: "transmission"},
	{ID: "ndt"},
}

// CategoryIDs extracts the ids of a table in order.
func CategoryIDs(table []CategoryInfo) []string {
	ids := make([]string, len(table))
	for i := range table {
		ids[i] = table[i].ID
	}
	return ids
}
