package services

import (
	"path"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// ELibraryFile is the document table, relative to the content root.
const ELibraryFile = "elibrary/elibrary.csv"

// ELibraryArtifact is the body of elibrary.json.
type ELibraryArtifact struct {
	Documents   []domain.ELibraryDocument `json:"documents"`
	Sections    map[string]int            `json:"sections"`
	SectionInfo []domain.SectionInfo      `json:"sectionInfo"`
	Metadata    domain.Envelope           `json:"metadata"`
}

// DocumentParser turns eLibrary records into validated documents.
type DocumentParser struct {
	media driven.MediaResolver
}

// NewDocumentParser creates a document parser.
func NewDocumentParser(media driven.MediaResolver) *DocumentParser {
	return &DocumentParser{media: media}
}

// ParseAll parses every record in file order, rejecting duplicate ids.
func (p *DocumentParser) ParseAll(records []domain.Record, warn *Warnings) ([]domain.ELibraryDocument, error) {
	docs := make([]domain.ELibraryDocument, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		doc, err := p.Parse(rec, warn)
		if err != nil {
			return nil, &domain.RowError{Domain: string(domain.DomainELibrary), Row: rec.Row, Err: err}
		}
		if seen[doc.ID] {
			return nil, &domain.RowError{
				Domain: string(domain.DomainELibrary),
				Row:    rec.Row,
				Err:    &domain.DuplicateIDError{Domain: "document", ID: doc.ID, Row: rec.Row},
			}
		}
		seen[doc.ID] = true
		docs = append(docs, doc)
	}
	return docs, nil
}

// Parse validates one record and resolves its PDF.
func (p *DocumentParser) Parse(rec domain.Record, warn *Warnings) (domain.ELibraryDocument, error) {
	id, err := domain.RequireNonEmpty(rec.Get("id"), "id", rowID(rec))
	if err != nil {
		return domain.ELibraryDocument{}, err
	}
	if err := domain.ValidateID("document", id, rec.Row); err != nil {
		return domain.ELibraryDocument{}, err
	}

	required := map[string]string{}
	for _, field := range []string{"title", "section", "summary", "content", "date"} {
		v, err := domain.RequireNonEmpty(rec.Get(field), field, id)
		if err != nil {
			return domain.ELibraryDocument{}, err
		}
		required[field] = v
	}

	section := domain.Section(required["section"])
	if !section.Valid() {
		return domain.ELibraryDocument{}, &domain.ValidationError{
			EntityID: id,
			Field:    "section",
			Value:    required["section"],
			Reason:   "allowed sections: " + joinSections(domain.Sections),
		}
	}
	if err := domain.ValidateDate(required["date"], id); err != nil {
		return domain.ELibraryDocument{}, err
	}

	tags := domain.SplitList(rec.Get("tags"), "")
	if len(tags) == 0 {
		warn.Add(id, "no tags")
	}

	file := domain.Optional(rec.Get("file_url"))
	if file == "" {
		files := p.media.Resolve(domain.MediaQuery{
			Dir:  path.Join("elibrary", id, "files"),
			Kind: domain.MediaDocuments,
		})
		reportResolution(warn, id, "files/", files)
		file = files.First()
	}

	return domain.ELibraryDocument{
		ID:       id,
		Title:    required["title"],
		Section:  section,
		Category: domain.Optional(rec.Get("category")),
		Author:   domain.Optional(rec.Get("author")),
		Date:     required["date"],
		Summary:  required["summary"],
		Content:  required["content"],
		FileURL:  prefixOne(path.Join(id, "files"), file),
		Tags:     tags,
		Featured: domain.ParseBool(rec.Get("featured")),
	}, nil
}

func documentMediaRefs(docs []domain.ELibraryDocument) []mediaRef {
	var refs []mediaRef
	for _, d := range docs {
		if d.FileURL != "" {
			refs = append(refs, mediaRef{entityID: d.ID, kind: domain.MediaDocuments, path: path.Join("elibrary", d.FileURL)})
		}
	}
	return refs
}

func documentIDs(docs []domain.ELibraryDocument) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

func documentSections(docs []domain.ELibraryDocument) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = string(d.Section)
	}
	return out
}
