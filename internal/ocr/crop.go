package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/numvision/ocr-number-gate/internal/models"
)

// CropRegion decodes image bytes, cuts the region out and re-encodes the cut
// as PNG. The region is clamped to the image bounds; an empty intersection
// is an error. An empty region returns the input unchanged.
func CropRegion(data []byte, region models.Region) ([]byte, error) {
	if region.IsEmpty() {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	rect := image.Rect(
		region.X,
		region.Y,
		region.X+region.Width,
		region.Y+region.Height,
	).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("region %s outside image bounds %v", region, img.Bounds())
	}
	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return nil, fmt.Errorf("image type %T does not support sub-images", img)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, sub.SubImage(rect)); err != nil {
		return nil, fmt.Errorf("encode cropped image: %w", err)
	}
	return buf.Bytes(), nil
}
