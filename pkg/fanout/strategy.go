// Package fanout decides how one resized raster lands on the two screens of
// a panel. A Strategy turns the raster into a stream of positioned writes
// and the Pusher replays them against a device.
package fanout

import (
	"fmt"
	"image"
)

type Write struct {
	Screen uint8
	At     image.Point
	Img    image.Image
}

type Image interface {
	image.Image
	SubImage(image.Rectangle) image.Image
}

type Strategy interface {
	Name() string
	Process(img Image) (<-chan Write, error)
}

// Parse maps a strategy name to its implementation. The empty string means
// Mirror.
func Parse(name string) (Strategy, error) {
	switch name {
	case "", "mirror":
		return Mirror(), nil
	case "split":
		return Split(), nil
	case "blocks":
		return Blocks(), nil
	}

	return nil, fmt.Errorf("unknown strategy %q", name)
}
