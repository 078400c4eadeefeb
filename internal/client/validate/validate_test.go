package validate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal valid PNG header so DetectContentType reports image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{"valid", "user@test.com", ""},
		{"valid with subdomain", "a.b@mail.example.org", ""},
		{"empty", "", "Email is required"},
		{"no at sign", "usertest.com", "Invalid email format"},
		{"no domain dot", "user@test", "Invalid email format"},
		{"spaces", "user @test.com", "Invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("longenough"))
	assert.NoError(t, Password("12345678"))

	err := Password("short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())

	err = Password("")
	require.Error(t, err)
	assert.Equal(t, "Password is required", err.Error())
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("Ana Maria"))

	err := Name("ab")
	require.Error(t, err)
	assert.Equal(t, "Name must be at least 3 characters", err.Error())

	err = Name("   ")
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())
}

func TestDescription(t *testing.T) {
	assert.NoError(t, Description("A wonderful trip to the mountains"))

	err := Description("too short")
	require.Error(t, err)
	assert.Equal(t, "Description must be at least 10 characters", err.Error())

	err = Description("")
	require.Error(t, err)
	assert.Equal(t, "Description is required", err.Error())
}

func TestPhoto(t *testing.T) {
	t.Run("valid image under limit", func(t *testing.T) {
		photo := append(bytes.Clone(pngHeader), make([]byte, 500*1024)...)
		assert.NoError(t, Photo(photo))
	})

	t.Run("missing", func(t *testing.T) {
		err := Photo(nil)
		require.Error(t, err)
		assert.Equal(t, "Photo is required", err.Error())
	})

	t.Run("too large", func(t *testing.T) {
		photo := append(bytes.Clone(pngHeader), make([]byte, MaxPhotoSize)...)
		err := Photo(photo)
		require.Error(t, err)
		assert.Equal(t, "Photo size must be less than 1MB", err.Error())
	})

	t.Run("not an image", func(t *testing.T) {
		err := Photo([]byte(strings.Repeat("plain text ", 10)))
		require.Error(t, err)
		assert.Equal(t, "Please select a valid image file", err.Error())
	})
}

func TestLocation(t *testing.T) {
	lat := -2.5
	lon := 118.0

	assert.NoError(t, Location(&lat, &lon))

	for _, tc := range []struct {
		name     string
		lat, lon *float64
	}{
		{"missing lon", &lat, nil},
		{"missing lat", nil, &lon},
		{"missing both", nil, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Location(tc.lat, tc.lon)
			require.Error(t, err)
			assert.Equal(t, "Please select a location on the map", err.Error())
		})
	}
}
