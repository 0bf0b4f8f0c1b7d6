package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBinWritesExactBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, zap.NewNop())

	data := []byte{0x21, 0xF8, 0x00, 0x00}
	require.NoError(t, w.Bin("out/frame.bin", data))

	got, err := afero.ReadFile(fs, "out/frame.bin")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestBinOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, zap.NewNop())

	require.NoError(t, w.Bin("frame.bin", []byte{1}))
	require.NoError(t, w.Bin("frame.bin", []byte{2, 3}))

	got, err := afero.ReadFile(fs, "frame.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got)
}

func TestBinLeavesNoTemp(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, zap.NewNop())
	require.NoError(t, w.Bin("out/frame.bin", []byte{1, 2}))

	infos, err := afero.ReadDir(fs, "out")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "frame.bin", infos[0].Name())
}

func TestPreviewRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, zap.NewNop())

	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	src.Set(1, 1, color.NRGBA{B: 0xFF, A: 0xFF})

	require.NoError(t, w.Preview("shot.png", src))

	bs, err := afero.ReadFile(fs, "shot.png")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}
