package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStager_CopyDir(t *testing.T) {
	t.Run("copies nested files and counts them", func(t *testing.T) {
		content := t.TempDir()
		public := t.TempDir()
		touch(t, content,
			"projects/site/images/a.jpg",
			"projects/site/pdfs/report.pdf",
			"projects/site/notes/extra/deep.txt",
		)

		n, err := NewStager(content, public).CopyDir("projects/site", "projects/site")

		require.NoError(t, err)
		assert.Equal(t, 3, n)

		data, err := os.ReadFile(filepath.Join(public, "projects", "site", "images", "a.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "projects/site/images/a.jpg", string(data))
		assert.FileExists(t, filepath.Join(public, "projects", "site", "notes", "extra", "deep.txt"))
	})

	t.Run("overwrites existing files", func(t *testing.T) {
		content := t.TempDir()
		public := t.TempDir()
		touch(t, content, "team/images/jane.jpg")
		dst := filepath.Join(public, "team", "jane.jpg")
		require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
		require.NoError(t, os.WriteFile(dst, []byte("stale content that is longer"), 0644))

		_, err := NewStager(content, public).CopyDir("team/images", "team")

		require.NoError(t, err)
		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "team/images/jane.jpg", string(data))
	})

	t.Run("running twice gives the same tree", func(t *testing.T) {
		content := t.TempDir()
		public := t.TempDir()
		touch(t, content, "hero/images/1.jpg", "hero/images/2.jpg")
		s := NewStager(content, public)

		first, err := s.CopyDir("hero/images", "hero")
		require.NoError(t, err)
		second, err := s.CopyDir("hero/images", "hero")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		entries, err := os.ReadDir(filepath.Join(public, "hero"))
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("missing source copies nothing", func(t *testing.T) {
		public := t.TempDir()

		n, err := NewStager(t.TempDir(), public).CopyDir("equipment/none", "equipment/none")

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoDirExists(t, filepath.Join(public, "equipment", "none"))
	})
}

func TestStager_CopyFile(t *testing.T) {
	content := t.TempDir()
	public := t.TempDir()
	touch(t, content, "elibrary/guide/files/guide.pdf")
	s := NewStager(content, public)

	require.NoError(t, s.CopyFile("elibrary/guide/files/guide.pdf", "elibrary/guide/files/guide.pdf"))
	assert.FileExists(t, filepath.Join(public, "elibrary", "guide", "files", "guide.pdf"))
	assert.Equal(t, public, s.Root())

	err := s.CopyFile("elibrary/guide/files/missing.pdf", "elibrary/guide/files/missing.pdf")
	assert.Error(t, err)
}
