// Package virtual is a panel that only logs, for running any shell without
// hardware attached.
package virtual

import (
	"image"

	"go.uber.org/zap"

	"img565/pkg/proto"
)

func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) SetLight(light uint8) error {
	m.l.With(zap.Uint8("light", light)).Info("set-light")
	return nil
}

func (m *Mocker) Blit(screen uint8, posX uint16, posY uint16, image image.Image) error {
	m.l.With(
		zap.Uint8("screen", screen),
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", image.Bounds().Dx()),
		zap.Int("h", image.Bounds().Dy()),
	).Info("blit")
	return nil
}
