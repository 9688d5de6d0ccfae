package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoContentType(t *testing.T) {
	tests := []struct {
		filename    string
		contentType string
		ok          bool
	}{
		{"boiler.jpg", "image/jpeg", true},
		{"FLUE.JPEG", "image/jpeg", true},
		{"cupboard.png", "image/png", true},
		{"photo.webp", "image/webp", true},
		{"iphone.HEIC", "image/heic", true},
		{"notes.pdf", "", false},
		{"upload.csv", "", false},
		{"noextension", "", false},
	}

	for _, tt := range tests {
		contentType, ok := photoContentType(tt.filename)
		assert.Equal(t, tt.ok, ok, "filename=%q", tt.filename)
		assert.Equal(t, tt.contentType, contentType, "filename=%q", tt.filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "boiler_photo.jpg", sanitizeFilename("boiler_photo.jpg"))
	assert.Equal(t, "myboiler.jpg", sanitizeFilename("my boiler!.jpg"))
	assert.Equal(t, "..etcpasswd", sanitizeFilename("../../etc/passwd"))

	long := ""
	for i := 0; i < 150; i++ {
		long += "a"
	}
	assert.Len(t, sanitizeFilename(long), 100)
}
