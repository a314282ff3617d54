package banner

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
)

// ErrDecode marks a source payload that could not be decoded as an image.
var ErrDecode = errors.New("banner: source is not a decodable image")

// Render decodes src and produces one cover-fit JPEG per spec, preserving
// spec order. The source is scaled until it fully covers the target box and
// the centered excess is cropped away, so every output has exactly the
// requested dimensions with no letterboxing or distortion. Any decode or
// encode failure aborts the whole batch.
func Render(src []byte, specs []Spec) ([]Image, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	out := make([]Image, 0, len(specs))
	for _, spec := range specs {
		fitted := imaging.Fill(img, spec.Width, spec.Height, imaging.Center, imaging.Lanczos)
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, fitted, imaging.JPEG); err != nil {
			return nil, fmt.Errorf("banner: encode %dx%d variant: %w", spec.Width, spec.Height, err)
		}
		out = append(out, Image{Spec: spec, Data: buf.Bytes()})
	}
	return out, nil
}
