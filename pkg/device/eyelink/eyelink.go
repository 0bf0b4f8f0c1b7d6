// Package eyelink drives a pair of 240x240 eye panels over a serial link.
//
// Every transfer is one frame: a 10 byte header of code, screen and the
// big-endian rect fields x, y, w, h, then for blits a payload of w*h RGB565
// pixels, row-major and little-endian as the panel framebuffer expects.
package eyelink

import (
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"img565/pkg/bitmap"
	"img565/pkg/proto"
)

// Command codes understood by the firmware.
const (
	Shutdown = 108
	Startup  = 109
	SetLight = 110
	Blit     = 197
)

// Geometry of one eye panel.
const (
	ScreenWidth  = 240
	ScreenHeight = 240
)

func New(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	dev := &EyeLink{
		port:   serial,
		logger: logger,
		width:  ScreenWidth,
		height: ScreenHeight,
	}
	return dev, serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    921600,
		ReadTimeout: time.Millisecond,
	})
}

type EyeLink struct {
	port   io.Writer
	logger *zap.Logger
	width  int
	height int
}

func (e *EyeLink) Startup() error {
	return e.sendCMD(Startup)
}

func (e *EyeLink) Shutdown() error {
	return e.sendCMD(Shutdown)
}

func (e *EyeLink) SetLight(light uint8) error {
	return e.sendCMD(SetLight, uint16(light))
}

func (e *EyeLink) Blit(screen uint8, posX uint16, posY uint16, img image.Image) error {
	if screen > proto.ScreenRight {
		return errors.New("no such screen")
	}

	size := img.Bounds().Size()
	if size.X+int(posX) > e.width {
		return errors.New("width overflow")
	} else if size.Y+int(posY) > e.height {
		return errors.New("height overflow")
	}

	if err := e.sendHeader(Blit, screen, posX, posY, uint16(size.X), uint16(size.Y)); err != nil {
		return err
	}

	return e.sendBytes(bitmap.Encode(img))
}
