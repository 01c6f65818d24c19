package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageDataURL(t *testing.T) {
	contentType, raw, err := parseImageDataURL("data:image/png;base64,iVBORw0KGgo=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "iVBORw0KGgo=", raw)

	_, _, err = parseImageDataURL("data:text/plain;base64,aGVsbG8=")
	assert.True(t, IsValidation(err), "non-image payloads are rejected")

	_, _, err = parseImageDataURL("data:image/png;base64")
	assert.True(t, IsValidation(err), "a data URL without a body is rejected")

	_, _, err = parseImageDataURL("iVBORw0KGgo=")
	assert.True(t, IsValidation(err), "bare base64 without the data URL prefix is rejected")
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("image/jpg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".gif", extensionFor("image/gif"))
	assert.Equal(t, ".avif", extensionFor("image/avif"))
	assert.Equal(t, "", extensionFor("garbage"))
}
