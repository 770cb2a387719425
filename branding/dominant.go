package branding

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// sampleStride controls how sparsely screenshot pixels are read. Full
// 2x-DPI page screenshots run to tens of millions of pixels; sampling
// every Nth pixel in each dimension is indistinguishable for a dominant
// color estimate.
const sampleStride = 8

// DominantColor estimates the dominant color of an encoded image by
// averaging a sparse pixel sample.
func DominantColor(data []byte) (r, g, b uint8, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	bounds := img.Bounds()
	var sumR, sumG, sumB, count uint64

	for y := bounds.Min.Y; y < bounds.Max.Y; y += sampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += sampleStride {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa == 0 {
				continue
			}
			sumR += uint64(pr >> 8)
			sumG += uint64(pg >> 8)
			sumB += uint64(pb >> 8)
			count++
		}
	}

	if count == 0 {
		return 0, 0, 0, fmt.Errorf("screenshot contains no opaque pixels")
	}
	return uint8(sumR / count), uint8(sumG / count), uint8(sumB / count), nil
}
