package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Upload bounds, roughly the card aspect ratio at a size the recognize
// endpoint handles well.
const (
	maxWidth  = 1080
	maxHeight = 1440
)

// Downscale resizes img in place when it exceeds the upload bounds,
// preserving aspect ratio and re-encoding as JPEG. Content that does not
// decode as an image is left untouched; validation is the server's job.
func Downscale(img *ImageData) {
	decoded, _, err := image.Decode(bytes.NewReader(img.Content))
	if err != nil {
		return
	}

	bounds := decoded.Bounds()
	newWidth, newHeight := fitDimensions(bounds.Dx(), bounds.Dy())
	if newWidth == bounds.Dx() && newHeight == bounds.Dy() {
		return
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), decoded, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 80}); err != nil {
		return
	}
	img.Content = buf.Bytes()
	img.ContentType = "image/jpeg"
}

// fitDimensions scales (width, height) down to the upload bounds while
// maintaining aspect ratio.
func fitDimensions(width, height int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)
	scale := widthScale
	if heightScale < scale {
		scale = heightScale
	}

	return int(float64(width) * scale), int(float64(height) * scale)
}
