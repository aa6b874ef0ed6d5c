package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"IMAGE/JPEG", ".jpg"},
		{"video/mp4", ".mp4"},
		{"video/quicktime", ".mov"},
		{"application/pdf", ".pdf"},
		{"text/plain; charset=utf-8", ".txt"},
		{"application/x-unknown", ".bin"},
		{"", ".bin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionFor(tt.mime), tt.mime)
	}
}

func TestMediaClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image", MediaClass("image/png"))
	assert.Equal(t, "video", MediaClass("video/mp4; codecs=avc1"))
	assert.Equal(t, "", MediaClass("garbage"))
	assert.Equal(t, "text/plain", BaseType(" Text/Plain ; charset=utf-8"))
}
