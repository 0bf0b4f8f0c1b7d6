package eyelink

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// sendCMD frames a plain command, spreading args over the rect fields.
func (e *EyeLink) sendCMD(code uint8, args ...uint16) error {
	if len(args) > 4 {
		return errors.New("too many args")
	}

	var rect [4]uint16
	copy(rect[:], args)

	return e.sendHeader(code, 0, rect[0], rect[1], rect[2], rect[3])
}

func (e *EyeLink) sendHeader(code uint8, screen uint8, x, y, w, h uint16) error {
	var buf bytes.Buffer
	buf.WriteByte(code)
	buf.WriteByte(screen)
	for _, v := range []uint16{x, y, w, h} {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}

	return e.sendBytes(buf.Bytes())
}

func (e *EyeLink) sendBytes(bs []byte) error {
	var sent int
	var cost time.Duration

	start := time.Now()
	if n, err := e.port.Write(bs); err != nil {
		return err
	} else {
		sent = n
		cost = time.Since(start)
	}

	ext := ""
	if len(bs) <= 16 {
		ext = fmt.Sprintf("%x", bs)
	}

	e.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}
