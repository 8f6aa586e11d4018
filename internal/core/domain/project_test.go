package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		c     Coordinates
		field string
	}{
		{"inside", Coordinates{Lat: 27.7172, Lng: 85.3240}, ""},
		{"corner min", Coordinates{Lat: NepalLatMin, Lng: NepalLngMin}, ""},
		{"corner max", Coordinates{Lat: NepalLatMax, Lng: NepalLngMax}, ""},
		{"north of Nepal", Coordinates{Lat: 31.0, Lng: 84.0}, "coordinates_lat"},
		{"south of Nepal", Coordinates{Lat: 26.0, Lng: 84.0}, "coordinates_lat"},
		{"west of Nepal", Coordinates{Lat: 28.0, Lng: 79.9}, "coordinates_lng"},
		{"east of Nepal", Coordinates{Lat: 28.0, Lng: 88.3}, "coordinates_lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.c, "site")
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfBounds))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, "site", ve.EntityID)
		})
	}
}
