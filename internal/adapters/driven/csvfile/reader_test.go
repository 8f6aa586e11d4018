package csvfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_Read(t *testing.T) {
	t.Run("uses first row as header", func(t *testing.T) {
		path := writeFile(t, "id,title\nktft,Fast Track\nmelamchi,Tunnel\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "ktft", records[0].Get("id"))
		assert.Equal(t, "Fast Track", records[0].Get("title"))
		assert.Equal(t, "melamchi", records[1].Get("id"))
		assert.False(t, records[0].Has("ktft"))
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		path := writeFile(t, "\xEF\xBB\xBFid,title\nktft,Fast Track\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Has("id"))
		assert.Equal(t, "ktft", records[0].Get("id"))
	})

	t.Run("trims values and header names", func(t *testing.T) {
		path := writeFile(t, " id , title \n  ktft  ,  Fast Track \n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "ktft", records[0].Get("id"))
		assert.Equal(t, "Fast Track", records[0].Get("title"))
	})

	t.Run("skips empty and blank lines", func(t *testing.T) {
		path := writeFile(t, "id,title\n\nktft,Fast Track\n , \n\nmelamchi,Tunnel\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "melamchi", records[1].Get("id"))
	})

	t.Run("records carry source line numbers", func(t *testing.T) {
		path := writeFile(t, "id\n\na\nb\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 3, records[0].Row)
		assert.Equal(t, 4, records[1].Row)
	})

	t.Run("quoted fields keep separators and newlines", func(t *testing.T) {
		path := writeFile(t, "id,scope\nktft,\"PDA; SLT, with comma\"\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "PDA; SLT, with comma", records[0].Get("scope"))
	})

	t.Run("space before an opening quote is trimmed", func(t *testing.T) {
		path := writeFile(t, "id,title\nsite, \"Title, with comma\"\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "site", records[0].Get("id"))
		assert.Equal(t, "Title, with comma", records[0].Get("title"))
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		path := writeFile(t, "id,title,client\nshort,Only Title\nlong,T,C,extra\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "", records[0].Get("client"))
		assert.True(t, records[0].Has("client"))
		assert.Equal(t, "C", records[1].Get("client"))
	})

	t.Run("header only yields no records", func(t *testing.T) {
		path := writeFile(t, "id,title\n")

		records, err := New().Read(path)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing file is an io error", func(t *testing.T) {
		_, err := New().Read(filepath.Join(t.TempDir(), "nope.csv"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIO))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.False(t, errors.Is(err, domain.ErrParse))
	})

	t.Run("malformed quoting is a parse error", func(t *testing.T) {
		path := writeFile(t, "id,title\nktft,\"unterminated\n")

		_, err := New().Read(path)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
		assert.Contains(t, err.Error(), path)

		var readErr *domain.ReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, path, readErr.Path)
	})
}
