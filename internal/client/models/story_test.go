package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasLocation(t *testing.T) {
	lat := -2.5
	lon := 118.0

	tests := []struct {
		name string
		lat  *float64
		lon  *float64
		want bool
	}{
		{"both present", &lat, &lon, true},
		{"lat only", &lat, nil, false},
		{"lon only", nil, &lon, false},
		{"both absent", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Story{ID: "s1", Lat: tt.lat, Lon: tt.lon}
			assert.Equal(t, tt.want, s.HasLocation())
		})
	}
}
