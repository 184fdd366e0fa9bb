package imaging

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	tmpDir := t.TempDir()
	imagePath := filepath.Join(tmpDir, "card.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("jpeg bytes"), 0o644))

	assert.NoError(t, Acquire(imagePath))
	assert.NoError(t, Acquire("data:image/jpeg;base64,aGVsbG8="))

	assert.Error(t, Acquire(""))
	assert.Error(t, Acquire(filepath.Join(tmpDir, "missing.jpg")))
}

func TestResolveDataURI(t *testing.T) {
	payload := []byte("fake image content")
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	img, err := Resolve(ref)
	require.NoError(t, err)
	assert.Equal(t, payload, img.Content)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ref, img.SourceURI)
}

func TestResolveDataURIDefaultsContentType(t *testing.T) {
	ref := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	img, err := Resolve(ref)
	require.NoError(t, err)
	// Non-image mime falls back to jpeg for the upload.
	assert.Equal(t, "image/jpeg", img.ContentType)
}

func TestResolveMalformedDataURI(t *testing.T) {
	malformed := []string{
		"data:image/jpeg;base64,!!!not-base64!!!",
		"data:image/jpeg;base64,",
		"data:image/jpeg,plain-not-base64",
	}
	for _, ref := range malformed {
		_, err := Resolve(ref)
		assert.ErrorIs(t, err, ErrMalformedImageData, "ref %q", ref)
	}
}

func TestResolveFile(t *testing.T) {
	tmpDir := t.TempDir()
	imagePath := filepath.Join(tmpDir, "card.jpg")
	content := []byte("not really a jpeg")
	require.NoError(t, os.WriteFile(imagePath, content, 0o644))

	img, err := Resolve(imagePath)
	require.NoError(t, err)
	// Undecodable content passes through untouched.
	assert.Equal(t, content, img.Content)
	assert.Equal(t, "image/jpeg", img.ContentType)
}

func TestResolveMissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/jpeg;base64,abcd"))
	assert.False(t, IsDataURI("/tmp/card.jpg"))
	assert.False(t, IsDataURI("file:///tmp/card.jpg"))
}
