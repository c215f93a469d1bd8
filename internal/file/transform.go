package file

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Uploaded images are normalized to a fixed 300×300 PNG. Both dimensions are
// forced; aspect ratio is not preserved.
const (
	thumbWidth  = 300
	thumbHeight = 300
)

// transformImage decodes data as an image, resizes it to exactly
// thumbWidth×thumbHeight, and re-encodes it as PNG regardless of the input
// format. Undecodable input yields an ErrTransform-wrapped error.
func transformImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrTransform, err)
	}

	resized := imaging.Resize(img, thumbWidth, thumbHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrTransform, err)
	}
	return buf.Bytes(), nil
}
