package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		sep   string
		want  []string
	}{
		{"trims and drops empty parts", "a; b ;;c", "", []string{"a", "b", "c"}},
		{"empty is empty slice", "", "", []string{}},
		{"blank is empty slice", "   ", ";", []string{}},
		{"single value", "PDA", "", []string{"PDA"}},
		{"custom separator", "x, y,,z", ",", []string{"x", "y", "z"}},
		{"only separators", ";;;", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.value, tt.sep)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "True", "1", "yes", "YES", " yes "} {
		assert.True(t, ParseBool(v), v)
	}
	for _, v := range []string{"", "false", "0", "no", "y", "on", "2"} {
		assert.False(t, ParseBool(v), v)
	}
}

func TestParseRequiredNumber(t *testing.T) {
	t.Run("parses floats", func(t *testing.T) {
		n, err := ParseRequiredNumber(" 27.7172 ", "coordinates_lat")
		require.NoError(t, err)
		assert.InDelta(t, 27.7172, n, 1e-9)
	})

	t.Run("blank is missing", func(t *testing.T) {
		_, err := ParseRequiredNumber("  ", "year")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingField))

		var mf *MissingFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "year", mf.Field)
	})

	t.Run("non-numeric is invalid", func(t *testing.T) {
		_, err := ParseRequiredNumber("twenty", "year")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidNumber))
		assert.Contains(t, err.Error(), "twenty")
	})

	t.Run("NaN and Inf are invalid", func(t *testing.T) {
		for _, v := range []string{"NaN", "Inf", "-Inf"} {
			_, err := ParseRequiredNumber(v, "order")
			assert.True(t, errors.Is(err, ErrInvalidNumber), v)
		}
	})
}

func TestRequireNonEmpty(t *testing.T) {
	v, err := RequireNonEmpty("  Kathmandu  ", "location_name", "ktft")
	require.NoError(t, err)
	assert.Equal(t, "Kathmandu", v)

	_, err = RequireNonEmpty("", "client", "ktft")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Equal(t, `missing required field "client" for ktft`, err.Error())
}

func TestOptionalAndOrDefault(t *testing.T) {
	assert.Equal(t, "", Optional("   "))
	assert.Equal(t, "Pile Dynamics", Optional(" Pile Dynamics "))
	assert.Equal(t, "N/A", OrDefault(" ", "N/A"))
	assert.Equal(t, "4000 kN", OrDefault("4000 kN", "N/A"))
}
