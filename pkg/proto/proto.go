package proto

import (
	"fmt"
	"image"
)

// Screens addressable by Blit. The panel pair is wired left then right.
const (
	ScreenLeft  uint8 = 0
	ScreenRight uint8 = 1
)

// ParseScreen maps a user-facing screen name to its wire id.
func ParseScreen(s string) (uint8, error) {
	switch s {
	case "", "left", "0":
		return ScreenLeft, nil
	case "right", "1":
		return ScreenRight, nil
	}

	return 0, fmt.Errorf("unknown screen %q", s)
}

// Control drives a dual-screen panel. Implementations transfer pixels in
// RGB565 and must reject blits that overflow a screen.
type Control interface {
	Startup() error
	Shutdown() error

	SetLight(light uint8) error

	Blit(screen uint8, posX uint16, posY uint16, image image.Image) error
}
