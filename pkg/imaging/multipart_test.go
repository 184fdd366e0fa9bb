package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartBody(t *testing.T) {
	img := &ImageData{Content: []byte("jpeg bytes"), ContentType: "image/jpeg"}

	body, contentType, err := MultipartBody(img)
	require.NoError(t, err)
	require.NotNil(t, body)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "image", part.FormName())
	assert.True(t, strings.HasSuffix(part.FileName(), ".jpg"))
	assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))

	data, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	// Single field only
	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestMultipartBodyFreshPerCall(t *testing.T) {
	img := &ImageData{Content: []byte("jpeg bytes")}

	first, _, err := MultipartBody(img)
	require.NoError(t, err)
	second, _, err := MultipartBody(img)
	require.NoError(t, err)

	// Distinct buffers: consuming one never drains the other.
	io.ReadAll(first)
	assert.Positive(t, second.Len())
}

func TestMultipartBodyEmptyImage(t *testing.T) {
	_, _, err := MultipartBody(nil)
	assert.ErrorIs(t, err, ErrMalformedImageData)

	_, _, err = MultipartBody(&ImageData{})
	assert.ErrorIs(t, err, ErrMalformedImageData)
}

func TestDownscaleLargeImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2400, 3200))
	for y := 0; y < 3200; y += 100 {
		for x := 0; x < 2400; x += 100 {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img := &ImageData{Content: buf.Bytes(), ContentType: "image/png"}
	Downscale(img)

	decoded, format, err := image.Decode(bytes.NewReader(img.Content))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), 1080)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 1440)
	assert.Equal(t, "image/jpeg", img.ContentType)
}

func TestDownscaleSmallImageUntouched(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 800))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	img := &ImageData{Content: buf.Bytes(), ContentType: "image/png"}
	Downscale(img)

	assert.Equal(t, buf.Bytes(), img.Content)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestDownscaleNonImagePassesThrough(t *testing.T) {
	content := []byte("definitely not an image")
	img := &ImageData{Content: content, ContentType: "image/jpeg"}
	Downscale(img)
	assert.Equal(t, content, img.Content)
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{600, 800, 600, 800},
		{1080, 1440, 1080, 1440},
		{2160, 2880, 1080, 1440},
		{4000, 1000, 1080, 270},
		{1000, 4000, 360, 1440},
	}
	for _, tt := range tests {
		gotW, gotH := fitDimensions(tt.w, tt.h)
		assert.Equal(t, tt.wantW, gotW, "width for %dx%d", tt.w, tt.h)
		assert.Equal(t, tt.wantH, gotH, "height for %dx%d", tt.w, tt.h)
	}
}
