package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ns-engineering/contentbuild/internal/adapters/driven/media/filesystem"
	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

func TestValidateMedia(t *testing.T) {
	media := newMedia(t, map[string]string{
		"projects/dam/images/a.jpg": "a",
	})
	warn := NewWarnings(domain.DomainProjects)

	missing := validateMedia(media, warn, []mediaRef{
		{entityID: "dam", kind: domain.MediaImages, path: "projects/dam/images/a.jpg"},
		{entityID: "dam", kind: domain.MediaDocuments, path: "projects/dam/pdfs/r.pdf"},
		{entityID: "dam", kind: domain.MediaDocuments, path: "projects/dam/pdfs/r.pdf"},
	})

	assert.Equal(t, 1, missing)
	require.Equal(t, 1, warn.Len())
	w := warn.List()[0]
	assert.Equal(t, "dam", w.EntityID)
	assert.Equal(t, "pdf file not found: "+filepath.Join(media.Root(), "projects", "dam", "pdfs", "r.pdf"), w.Message)
}

func TestStageDirs(t *testing.T) {
	media := newMedia(t, map[string]string{
		"projects/dam/images/a.jpg": "a",
		"projects/dam/pdfs/r.pdf":   "r",
		"projects/dam/notes.txt":    "n",
	})
	publish := t.TempDir()
	stager := filesystem.NewStager(media.Root(), publish)

	copied, err := stageDirs(media, stager, "projects", []string{"dam", "road"}, "images", "pdfs")

	require.NoError(t, err)
	assert.Equal(t, 2, copied)
	assert.FileExists(t, filepath.Join(publish, "projects", "dam", "images", "a.jpg"))
	assert.FileExists(t, filepath.Join(publish, "projects", "dam", "pdfs", "r.pdf"))
	assert.NoFileExists(t, filepath.Join(publish, "projects", "dam", "notes.txt"))
	assert.NoDirExists(t, filepath.Join(publish, "projects", "road"))
}

func TestStageFiles(t *testing.T) {
	media := newMedia(t, map[string]string{
		"team/images/arun.jpg":  "a",
		"team/images/other.jpg": "o",
	})
	publish := t.TempDir()
	stager := filesystem.NewStager(media.Root(), publish)

	copied, err := stageFiles(media, stager, TeamImagesDir, TeamPublicDir, []string{"arun.jpg", "gone.jpg"})

	require.NoError(t, err)
	assert.Equal(t, 1, copied)
	data, err := os.ReadFile(filepath.Join(publish, "team", "arun.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
	assert.NoFileExists(t, filepath.Join(publish, "team", "other.jpg"))
}

func TestWarnings(t *testing.T) {
	warn := NewWarnings(domain.DomainTeam)
	assert.Equal(t, []domain.Warning{}, warn.List())

	warn.Add("", "%d images", 3)
	warn.Add("arun", "no portrait")

	assert.Equal(t, []domain.Warning{
		{Domain: domain.DomainTeam, Message: "3 images"},
		{Domain: domain.DomainTeam, EntityID: "arun", Message: "no portrait"},
	}, warn.List())
	assert.Equal(t, 2, warn.Len())
}
