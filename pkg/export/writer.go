// Package export persists encoder output to files.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Writer lands files through a temp name and a rename, so a consumer polling
// the target path never observes a half-written frame.
type Writer struct {
	fs  afero.Fs
	log *zap.Logger
}

func NewWriter(fs afero.Fs, logger *zap.Logger) *Writer {
	return &Writer{fs: fs, log: logger}
}

// Bin writes raw RGB565 bytes to path.
func (w *Writer) Bin(path string, data []byte) error {
	if err := w.atomic(path, data); err != nil {
		return fmt.Errorf("write %s failed: %w", path, err)
	}

	w.log.With(
		zap.String("path", path),
		zap.String("size", bytesize.New(float64(len(data))).String()),
	).Info("binary written")

	return nil
}

// Preview writes img as PNG, for eyeballing a conversion without a device.
func (w *Writer) Preview(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode preview failed: %w", err)
	}

	if err := w.atomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s failed: %w", path, err)
	}

	w.log.With(zap.String("path", path)).Debug("preview written")
	return nil
}

func (w *Writer) atomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if exists, err := afero.DirExists(w.fs, dir); err != nil {
			return err
		} else if !exists {
			if err2 := w.fs.MkdirAll(dir, 0755); err2 != nil {
				return err2
			}
		}
	}

	tmp := filepath.Join(dir, "."+xid.New().String())
	if err := afero.WriteFile(w.fs, tmp, data, 0644); err != nil {
		return err
	}

	if err := w.fs.Rename(tmp, path); err != nil {
		_ = w.fs.Remove(tmp)
		return err
	}

	return nil
}
