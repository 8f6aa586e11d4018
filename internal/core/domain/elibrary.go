package domain

// Section is one of the fixed eLibrary sections.
type Section string

// eLibrary sections.
const (
	SectionStandards    Section = "standards"
	SectionPublications Section = "publications"
	SectionNewsletters  Section = "newsletters"
)

// Sections lists every section in display order.
var Sections = []Section{SectionStandards, SectionPublications, SectionNewsletters}

// Valid reports whether s is one of Sections.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// ELibraryDocument is a standard, publication or newsletter.
type ELibraryDocument struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Section  Section  `json:"section"`
	Category string   `json:"category,omitempty"`
	Author   string   `json:"author,omitempty"`
	Date     string   `json:"date"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	FileURL  string   `json:"fileUrl,omitempty"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// SectionInfo is display metadata for a section.
type SectionInfo struct {
	ID          Section `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Order       int     `json:"order"`
}

// DefaultSectionIcon is used when an override row has no icon.
const DefaultSectionIcon = "FileText"

// BuiltinSections is the display table for every section.
var BuiltinSections = []SectionInfo{
	{
		ID:          SectionStandards,
		Label:       "Standards",
		Description: "Industry standards and testing protocols",
		Icon:        "FileText",
		Order:       1,
	},
	{
		ID:          SectionPublications,
		Label:       "Publications",
		Description: "Technical papers and research articles",
		Icon:        "BookOpen",
		Order:       2,
	},
	{
		ID:          SectionNewsletters,
		Label:       "Newsletters",
		Description: "Company newsletters and updates",
		Icon:        "Newspaper",
		Order:       3,
	},
}
