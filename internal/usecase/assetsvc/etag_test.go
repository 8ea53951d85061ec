package assetsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestETag(t *testing.T) {
	assert.Equal(t, `"1.0.3"`, ETag("1.0.3"))
}

func TestMatchesETag(t *testing.T) {
	tag := ETag("1.0.3")
	tests := []struct {
		header string
		want   bool
	}{
		{header: "", want: false},
		{header: `"1.0.3"`, want: true},
		{header: `W/"1.0.3"`, want: true},
		{header: `"1.0.2"`, want: false},
		{header: `1.0.3`, want: false},
		{header: `"0.9.0", "1.0.3"`, want: true},
		{header: `*`, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesETag(tt.header, tag), tt.header)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html", ContentType("index.html"))
	assert.Equal(t, "image/jpeg", ContentType("photo.JPEG"))
	assert.Equal(t, "font/woff2", ContentType("a/b/font.woff2"))
	assert.Equal(t, "application/octet-stream", ContentType("archive.tar.gz"))
	assert.Equal(t, "application/octet-stream", ContentType("README"))
}
