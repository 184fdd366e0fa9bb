package imaging

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// MultipartBody wraps the image bytes as a multipart form with a single
// "image" field and a generated filename. Each upload gets its own body.
func MultipartBody(img *ImageData) (*bytes.Buffer, string, error) {
	if img == nil || len(img.Content) == 0 {
		return nil, "", ErrMalformedImageData
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="image"; filename="%s.jpg"`, uuid.NewString()))
	contentType := img.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(img.Content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// IsDataURI reports whether ref carries inline base64 data rather than a
// filesystem reference.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}
