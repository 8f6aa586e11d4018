package domain

// MediaKind selects the extension allow-list and sort order of a scan.
type MediaKind int

const (
	// MediaImages are entity photos: .jpg .jpeg .png, lexicographic order.
	MediaImages MediaKind = iota

	// MediaCarousel are hero slides: images plus .webp, natural order.
	MediaCarousel

	// MediaPortraits are team photos: images plus .webp, lexicographic order.
	MediaPortraits

	// MediaDocuments are PDFs, lexicographic order.
	MediaDocuments
)

var mediaExtensions = map[MediaKind][]string{
	MediaImages:    {".jpg", ".jpeg", ".png"},
	MediaCarousel:  {".jpg", ".jpeg", ".png", ".webp"},
	MediaPortraits: {".jpg", ".jpeg", ".png", ".webp"},
	MediaDocuments: {".pdf"},
}

// Extensions returns the lowercase allow-list in preference order.
func (k MediaKind) Extensions() []string {
	exts := mediaExtensions[k]
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// NaturalSort reports whether names compare digits numerically.
func (k MediaKind) NaturalSort() bool {
	return k == MediaCarousel
}

func (k MediaKind) String() string {
	switch k {
	case MediaImages:
		return "image"
	case MediaCarousel:
		return "carousel image"
	case MediaPortraits:
		return "portrait"
	case MediaDocuments:
		return "pdf"
	default:
		return "media"
	}
}

// MediaQuery asks the resolver for the files of one entity field.
type MediaQuery struct {
	// Dir is relative to the content root, e.g. "projects/test-site/images".
	Dir  string
	Kind MediaKind

	// Explicit is the CSV-provided list. When non-empty it is used verbatim.
	Explicit []string

	// Hero is the CSV-provided default asset, if any.
	Hero string
}

// ResolvedMedia is the outcome of a MediaQuery. Files are bare filenames.
type ResolvedMedia struct {
	Files []string
	Hero  string

	// FromCSV is true when Explicit was used and no scan happened.
	FromCSV bool

	// HeroMissing is set when a requested Hero was not in Files.
	HeroMissing bool

	// ScanErr is a disk error that degraded the result to empty.
	ScanErr error
}

// First returns the first file, or "".
func (m ResolvedMedia) First() string {
	if len(m.Files) == 0 {
		return ""
	}
	return m.Files[0]
}
