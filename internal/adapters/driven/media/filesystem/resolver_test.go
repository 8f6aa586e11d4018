package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
}

func TestResolver_List(t *testing.T) {
	t.Run("filters by extension case-insensitively and sorts", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root,
			"projects/site/images/b.png",
			"projects/site/images/a.jpg",
			"projects/site/images/C.JPEG",
			"projects/site/images/notes.txt",
			"projects/site/images/.DS_Store",
			"projects/site/images/d.webp",
		)

		names, err := NewResolver(root).List("projects/site/images", domain.MediaImages)

		require.NoError(t, err)
		assert.Equal(t, []string{"C.JPEG", "a.jpg", "b.png"}, names)
	})

	t.Run("carousel allows webp and sorts naturally", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root,
			"hero/images/img10.jpg",
			"hero/images/img2.webp",
			"hero/images/IMG1.png",
		)

		names, err := NewResolver(root).List("hero/images", domain.MediaCarousel)

		require.NoError(t, err)
		assert.Equal(t, []string{"IMG1.png", "img2.webp", "img10.jpg"}, names)
	})

	t.Run("documents keep only pdfs", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "doc/files/z.pdf", "doc/files/a.PDF", "doc/files/a.doc")

		names, err := NewResolver(root).List("doc/files", domain.MediaDocuments)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.PDF", "z.pdf"}, names)
	})

	t.Run("skips subdirectories", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "site/images/nested.jpg/inner.txt", "site/images/a.jpg")

		names, err := NewResolver(root).List("site/images", domain.MediaImages)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, names)
	})

	t.Run("missing directory is empty, not an error", func(t *testing.T) {
		names, err := NewResolver(t.TempDir()).List("nope/images", domain.MediaImages)

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("path that is a file is an error", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "site/images")

		names, err := NewResolver(root).List("site/images", domain.MediaImages)

		assert.Error(t, err)
		assert.Empty(t, names)
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("explicit list overrides the filesystem", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "p/images/z.jpg", "p/images/y.jpg")

		res := NewResolver(root).Resolve(domain.MediaQuery{
			Dir:      "p/images",
			Kind:     domain.MediaImages,
			Explicit: []string{"a.jpg", "b.jpg"},
		})

		assert.Equal(t, []string{"a.jpg", "b.jpg"}, res.Files)
		assert.True(t, res.FromCSV)
		assert.Equal(t, "a.jpg", res.Hero)
	})

	t.Run("explicit list does not scan a broken directory", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "p/images")

		res := NewResolver(root).Resolve(domain.MediaQuery{
			Dir:      "p/images",
			Kind:     domain.MediaImages,
			Explicit: []string{"a.jpg"},
		})

		assert.NoError(t, res.ScanErr)
		assert.Equal(t, []string{"a.jpg"}, res.Files)
	})

	t.Run("scan sorts and picks first as hero", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "projects/test-site/images/b.png", "projects/test-site/images/a.jpg")

		res := NewResolver(root).Resolve(domain.MediaQuery{
			Dir:  "projects/test-site/images",
			Kind: domain.MediaImages,
		})

		assert.Equal(t, []string{"a.jpg", "b.png"}, res.Files)
		assert.Equal(t, "a.jpg", res.Hero)
		assert.False(t, res.FromCSV)
	})

	t.Run("csv hero found in resolved set is kept", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "p/images/a.jpg", "p/images/b.jpg")

		res := NewResolver(root).Resolve(domain.MediaQuery{
			Dir:  "p/images",
			Kind: domain.MediaImages,
			Hero: "b.jpg",
		})

		assert.Equal(t, "b.jpg", res.Hero)
		assert.False(t, res.HeroMissing)
	})

	t.Run("csv hero not found falls back to first", func(t *testing.T) {
		res := NewResolver(t.TempDir()).Resolve(domain.MediaQuery{
			Kind:     domain.MediaImages,
			Explicit: []string{"a.jpg", "b.jpg", "c.jpg"},
			Hero:     "missing.jpg",
		})

		assert.Equal(t, "a.jpg", res.Hero)
		assert.True(t, res.HeroMissing)
	})

	t.Run("no files means no hero", func(t *testing.T) {
		res := NewResolver(t.TempDir()).Resolve(domain.MediaQuery{
			Dir:  "p/images",
			Kind: domain.MediaImages,
			Hero: "a.jpg",
		})

		assert.Empty(t, res.Files)
		assert.Empty(t, res.Hero)
		assert.True(t, res.HeroMissing)
	})

	t.Run("disk errors degrade to empty", func(t *testing.T) {
		root := t.TempDir()
		touch(t, root, "p/images")

		res := NewResolver(root).Resolve(domain.MediaQuery{Dir: "p/images", Kind: domain.MediaImages})

		assert.Error(t, res.ScanErr)
		assert.Empty(t, res.Files)
		assert.Empty(t, res.Hero)
	})
}

func TestResolver_Exists(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "p/images/a.jpg")
	r := NewResolver(root)

	assert.True(t, r.Exists("p/images/a.jpg"))
	assert.True(t, r.Exists("p"))
	assert.False(t, r.Exists("p/images/b.jpg"))
	assert.Equal(t, root, r.Root())
}

func TestSortNames(t *testing.T) {
	t.Run("lexicographic compares code points", func(t *testing.T) {
		names := []string{"img10.jpg", "img2.jpg", "Img1.jpg"}
		SortNames(names, false)
		assert.Equal(t, []string{"Img1.jpg", "img10.jpg", "img2.jpg"}, names)
	})

	t.Run("natural compares digit runs as numbers", func(t *testing.T) {
		names := []string{"10-today.jpg", "2-growth.jpg", "01-founding.jpg"}
		SortNames(names, true)
		assert.Equal(t, []string{"01-founding.jpg", "2-growth.jpg", "10-today.jpg"}, names)
	})

	t.Run("natural order is deterministic for case-only differences", func(t *testing.T) {
		a := []string{"a.jpg", "A.jpg"}
		b := []string{"A.jpg", "a.jpg"}
		SortNames(a, true)
		SortNames(b, true)
		assert.Equal(t, a, b)
	})
}
