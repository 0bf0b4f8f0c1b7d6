package bitmap

import (
	"image"
)

// Encode serializes src into the .bin wire layout: one RGB565 value per
// pixel, row-major from the top-left, each value little-endian. No header,
// no padding; the result is always exactly 2*W*H bytes.
func Encode(src image.Image) []byte {
	if p, ok := src.(*RGB); ok {
		return encodeRGB(p)
	}

	b := src.Bounds()
	d := NewRGB565(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return d.pixels
}

func encodeRGB(p *RGB) []byte {
	b := p.Rect
	out := make([]byte, 2*b.Dx()*b.Dy())

	o := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := p.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			v := Pack565(p.Pix[i], p.Pix[i+1], p.Pix[i+2])
			out[o] = byte(v)
			out[o+1] = byte(v >> 8)
			i += 3
			o += 2
		}
	}

	return out
}
