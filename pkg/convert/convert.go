// Package convert turns arbitrary raster images into panel-sized 24-bit RGB
// and tracks the load / resize / encode order through Session. Everything in
// it is pure: no files, no sockets, no logging. Shells decide where bytes
// come from and go.
package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"

	"img565/pkg/bitmap"
)

// Fit selects how a source raster maps onto the target dimensions.
type Fit uint8

const (
	// FitStretch scales both axes independently to the exact target size.
	FitStretch Fit = iota
	// FitCover keeps the aspect ratio and crops centered overflow.
	FitCover
)

// ParseFit parses a fit mode name. The empty string means FitStretch.
func ParseFit(s string) (Fit, error) {
	switch s {
	case "", "stretch":
		return FitStretch, nil
	case "cover":
		return FitCover, nil
	}

	return 0, fmt.Errorf("unknown fit mode %q", s)
}

func (f Fit) String() string {
	if f == FitCover {
		return "cover"
	}

	return "stretch"
}

// Decode reads one image from r and normalizes it to 24-bit RGB. Grayscale
// and paletted sources expand to three channels here, at decode time; alpha
// is dropped, not blended. Input that fails to parse as any registered
// format reports ErrDecode regardless of what the file was named.
func Decode(r io.Reader) (*bitmap.RGB, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return bitmap.FromImage(img), nil
}

// Resize scales src to exactly d with Lanczos resampling. The axes scale
// independently, up or down, so the result may be distorted. Identical
// inputs always produce identical rasters.
func Resize(src *bitmap.RGB, d Dimensions) *bitmap.RGB {
	return bitmap.FromImage(imaging.Resize(src, d.Width, d.Height, imaging.Lanczos))
}

// Cover scales src to fill d while keeping its aspect ratio, cropping the
// centered overflow. Same filter as Resize.
func Cover(src *bitmap.RGB, d Dimensions) *bitmap.RGB {
	return bitmap.FromImage(imaging.Fill(src, d.Width, d.Height, imaging.Center, imaging.Lanczos))
}
