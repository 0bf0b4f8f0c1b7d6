package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(40 * i)
	}

	p := FromImage(src)
	require.Len(t, p.Pix, 3*3*2, "normalized raster should carry exactly three channels")

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			i := p.PixOffset(x, y)
			v := src.GrayAt(x, y).Y
			assert.Equal(t, v, p.Pix[i], "R at %d,%d", x, y)
			assert.Equal(t, v, p.Pix[i+1], "G at %d,%d", x, y)
			assert.Equal(t, v, p.Pix[i+2], "B at %d,%d", x, y)
		}
	}
}

func TestFromImagePaletted(t *testing.T) {
	pal := color.Palette{
		color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF},
		color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF},
	}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)

	p := FromImage(src)
	assert.Equal(t, []uint8{0x10, 0x20, 0x30, 0xAA, 0xBB, 0xCC}, p.Pix)
}

func TestFromImageDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	p := FromImage(src)
	assert.Equal(t, []uint8{200, 100, 50}, p.Pix, "alpha should be discarded without darkening the channels")
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF})
	src.SetNRGBA(4, 4, color.NRGBA{R: 7, G: 8, B: 9, A: 0xFF})

	p := FromImage(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), p.Rect, "result should be re-anchored at the origin")
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF}, p.At(0, 0))
	assert.Equal(t, color.NRGBA{R: 7, G: 8, B: 9, A: 0xFF}, p.At(2, 1))
}

func TestRGBSetAt(t *testing.T) {
	p := NewRGB(image.Rect(0, 0, 2, 2))
	p.Set(1, 1, color.NRGBA{R: 9, G: 8, B: 7, A: 0xFF})

	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 0xFF}, p.At(1, 1))
	assert.Equal(t, color.NRGBA{A: 0xFF}, p.At(0, 0))
	assert.Equal(t, color.NRGBA{}, p.At(5, 5), "out of bounds reads the zero color")
}

func TestSubImageShares(t *testing.T) {
	p := NewRGB(image.Rect(0, 0, 4, 4))
	sub := p.SubImage(image.Rect(1, 1, 3, 3)).(*RGB)

	sub.Set(1, 1, color.NRGBA{R: 0xFF, A: 0xFF})
	assert.Equal(t, color.NRGBA{R: 0xFF, A: 0xFF}, p.At(1, 1), "sub image should write through to the parent")

	empty := p.SubImage(image.Rect(9, 9, 10, 10))
	assert.True(t, empty.Bounds().Empty())
}
