package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("ada@example.com")
	assert.True(t, strings.HasPrefix(url, "https://www.gravatar.com/avatar/"))
	assert.True(t, strings.HasSuffix(url, "?s=200&r=pg&d=mm"))

	// Case and surrounding whitespace must not change the hash.
	assert.Equal(t, url, GravatarURL("  ADA@Example.COM "))

	assert.NotEqual(t, url, GravatarURL("grace@example.com"))
}
