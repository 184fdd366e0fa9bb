package imaging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

// ErrMalformedImageData is raised when a data: URI does not match the
// expected data:<mime>;base64,<payload> shape.
var ErrMalformedImageData = errors.New("invalid data URI format")

const defaultContentType = "image/jpeg"

// ImageData is the acquired image: raw bytes plus the opaque handle it
// came from.
type ImageData struct {
	Content     []byte
	ContentType string
	SourceURI   string
}

// Acquire checks that ref points at something scannable before a scan
// record is created. For file refs this means the file exists and is
// readable; data: URIs are accepted as-is and decoded later during
// payload construction.
func Acquire(ref string) error {
	if ref == "" {
		return errors.New("no image selected")
	}
	if strings.HasPrefix(ref, "data:") {
		return nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return fmt.Errorf("cannot read image: %w", err)
	}
	return f.Close()
}

// Resolve turns an image handle into bytes. data: URIs are decoded
// inline; anything else is treated as a filesystem reference. File
// contents are downscaled to the upload bounds when they decode as an
// image; undecodable files pass through untouched.
func Resolve(ref string) (*ImageData, error) {
	if strings.HasPrefix(ref, "data:") {
		return resolveDataURI(ref)
	}
	content, err := os.ReadFile(strings.TrimPrefix(ref, "file://"))
	if err != nil {
		return nil, fmt.Errorf("cannot read image: %w", err)
	}
	img := &ImageData{Content: content, ContentType: defaultContentType, SourceURI: ref}
	Downscale(img)
	return img, nil
}

func resolveDataURI(ref string) (*ImageData, error) {
	du, err := dataurl.DecodeString(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImageData, err)
	}
	if du.Encoding != dataurl.EncodingBase64 || len(du.Data) == 0 {
		return nil, ErrMalformedImageData
	}
	contentType := du.ContentType()
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = defaultContentType
	}
	return &ImageData{Content: du.Data, ContentType: contentType, SourceURI: ref}, nil
}
