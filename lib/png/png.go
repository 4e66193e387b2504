// Package png encodes rasterized previews.
package png

import (
	"bytes"
	"image"
	imagepng "image/png"
)

// Export encodes img with the best compression. Previews are small and
// written once, so size wins over speed.
func Export(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := &imagepng.Encoder{CompressionLevel: imagepng.BestCompression}
	if err := enc.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
