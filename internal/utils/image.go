package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
)

const thumbnailMaxEdge = 480

// DecodeImage decodes an uploaded JPEG or PNG. HEIC and other phone formats
// are rejected; admin event images come from the design pipeline as JPEG/PNG.
func DecodeImage(data []byte, contentType string) (image.Image, error) {
	switch contentType {
	case "image/jpeg":
		return jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		return png.Decode(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported image type %q", contentType)
}

// Thumbnail downscales an event image so its longest edge fits
// thumbnailMaxEdge, re-encoded as JPEG for the storefront listing view.
// Images already small enough are only re-encoded.
func Thumbnail(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() > thumbnailMaxEdge || bounds.Dy() > thumbnailMaxEdge {
		img = imaging.Fit(img, thumbnailMaxEdge, thumbnailMaxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
