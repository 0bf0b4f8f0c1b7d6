package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimensions is a validated target size in pixels. The axes are independent;
// nothing here requires them to preserve the source aspect ratio.
type Dimensions struct {
	Width  int
	Height int
}

// ParseDimensions parses width and height the way shells collect them, as two
// text fields. Either field failing to parse as a positive integer rejects
// the pair before any resize can run.
func ParseDimensions(width, height string) (Dimensions, error) {
	w, err := parseAxis("width", width)
	if err != nil {
		return Dimensions{}, err
	}

	h, err := parseAxis("height", height)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{Width: w, Height: h}, nil
}

// ParseSize parses a combined "WxH" string such as "240x240".
func ParseSize(s string) (Dimensions, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: %q is not WxH", ErrBadDimensions, s)
	}

	return ParseDimensions(w, h)
}

func parseAxis(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrBadDimensions, name, s)
	}

	if v < 1 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrBadDimensions, name, v)
	}

	return v, nil
}

// Validate reports whether both axes are usable as a resize target.
func (d Dimensions) Validate() error {
	if d.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrBadDimensions, d.Width)
	}

	if d.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrBadDimensions, d.Height)
	}

	return nil
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
