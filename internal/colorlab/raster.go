package colorlab

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Decoder is the raster collaborator: it turns encoded image bytes into a
// decoded raster. The engine itself stays platform-agnostic.
type Decoder interface {
	Decode(b []byte) (image.Image, error)
}

// StdDecoder decodes with the registered stdlib codecs (jpeg/png/gif) plus webp.
type StdDecoder struct{}

func (StdDecoder) Decode(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
