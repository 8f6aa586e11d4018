package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(3, []string{"id", "title", "client"}, []string{"ktft", "Fast Track"})

	assert.Equal(t, 3, r.Row)
	assert.Equal(t, "ktft", r.Get("id"))
	assert.Equal(t, "Fast Track", r.Get("title"))
	assert.Equal(t, "", r.Get("client"))
	assert.True(t, r.Has("client"))
	assert.False(t, r.Has("year"))
}

func TestNewRecord_ExtraValuesIgnored(t *testing.T) {
	r := NewRecord(2, []string{"id"}, []string{"a", "b", "c"})

	assert.Equal(t, "a", r.Get("id"))
	assert.False(t, r.Has(""))
}

func TestNewRecord_DuplicateHeaderLaterWins(t *testing.T) {
	r := NewRecord(2, []string{"id", "id"}, []string{"first", "second"})

	assert.Equal(t, "second", r.Get("id"))
}
