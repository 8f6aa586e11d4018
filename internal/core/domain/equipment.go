package domain

// EquipmentCategory is one of the fixed equipment categories.
type EquipmentCategory string

// Equipment categories.
const (
	EquipmentPileTesting  EquipmentCategory = "pile-testing"
	EquipmentDrilling     EquipmentCategory = "drilling"
	EquipmentLaboratory   EquipmentCategory = "laboratory"
	EquipmentGeophysical  EquipmentCategory = "geophysical"
	EquipmentFieldTesting EquipmentCategory = "field-testing"
)

// EquipmentCategories lists every category in display order.
var EquipmentCategories = []EquipmentCategory{
	EquipmentPileTesting,
	EquipmentDrilling,
	EquipmentLaboratory,
	EquipmentGeophysical,
	EquipmentFieldTesting,
}

// Valid reports whether c is one of EquipmentCategories.
func (c EquipmentCategory) Valid() bool {
	for _, known := range EquipmentCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Spec text used when a CSV cell is blank.
const (
	DefaultKeySpec   = "View specifications"
	DefaultSpecValue = "N/A"
)

// Equipment is one item of the equipment catalogue.
type Equipment struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     EquipmentCategory `json:"category"`
	Manufacturer string            `json:"manufacturer,omitempty"`
	Model        string            `json:"model,omitempty"`
	KeySpec      string            `json:"keySpec"`
	Description  string            `json:"description"`
	Specs        EquipmentSpecs    `json:"specs"`
	Applications []string          `json:"applications"`
	Media        EquipmentMedia    `json:"media"`
	Featured     bool              `json:"featured"`
}

// EquipmentSpecs are the technical specifications of an item.
type EquipmentSpecs struct {
	Capacity  string   `json:"capacity"`
	Accuracy  string   `json:"accuracy"`
	Standards []string `json:"standards"`
	Software  string   `json:"software,omitempty"`
}

// EquipmentMedia holds paths relative to the equipment content root.
type EquipmentMedia struct {
	Images    []string `json:"images"`
	SpecSheet string   `json:"specSheet,omitempty"`
	HeroImage string   `json:"heroImage,omitempty"`
}

// BuiltinEquipmentCategories is the display table for every category.
var BuiltinEquipmentCategories = []CategoryInfo{
	{
		ID:           string(EquipmentPileTesting),
		Label:        "Pile Testing",
		Color:        "#7c3aed",
		GradientFrom: "purple-500",
		GradientTo:   "purple-700",
		Description:  "Dynamic and static pile load testing equipment",
	},
	{
		ID:           string(EquipmentDrilling),
		Label:        "Drilling",
		Color:        "#6d28d9",
		GradientFrom: "purple-600",
		GradientTo:   "purple-800",
		Description:  "Core drilling and borehole investigation rigs",
	},
	{
		ID:           string(EquipmentLaboratory),
		Label:        "Laboratory",
		Color:        "#8b5cf6",
		GradientFrom: "purple-400",
		GradientTo:   "purple-600",
		Description:  "Soil and rock testing laboratory instruments",
	},
	{
		ID:           string(EquipmentGeophysical),
		Label:        "Geophysical",
		Color:        "#5b21b6",
		GradientFrom: "purple-700",
		GradientTo:   "purple-900",
		Description:  "Geophysical survey and subsurface investigation tools",
	},
	{
		ID:           string(EquipmentFieldTesting),
		Label:        "Field Testing",
		Color:        "#6366f1",
		GradientFrom: "indigo-600",
		GradientTo:   "purple-700",
		Description:  "In-situ field testing equipment",
	},
}
