package bitmap

import (
	"image"
	"image/color"
)

// Pack565 packs 8-bit channels into a 16-bit RGB565 value: rrrrrggg gggbbbbb.
// Each channel keeps its high-order bits (r&0xF8, g&0xFC, b>>3). Truncation,
// not rounding: re-encoding an asset must reproduce its bytes exactly.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		pixels: make([]byte, 2*r.Dx()*r.Dy()),
		stride: 2 * r.Dx(),
		bounds: r,
	}
}

// RGB565 is a 16-bit framebuffer in the panel wire layout: two bytes per
// pixel, least-significant byte first. It implements the draw.Image
// interface.
type RGB565 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB565) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB565) ColorModel() color.Model {
	return Model565
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB565) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(d.bounds)) {
		return Color565(0)
	}
	i := d.offset(x, y)
	return Color565(uint16(d.pixels[i+1])<<8 | uint16(d.pixels[i]))
}

// Set implements the draw.Image interface. The color is quantized through
// Pack565; alpha is dropped, matching how decoded sources are normalized.
func (d *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(d.bounds)) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	v := Pack565(n.R, n.G, n.B)
	i := d.offset(x, y)
	d.pixels[i] = byte(v)
	d.pixels[i+1] = byte(v >> 8)
}

func (d *RGB565) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + (x-d.bounds.Min.X)*2
}

// Pixels returns the backing buffer: row-major, little-endian, 2*W*H bytes.
func (d *RGB565) Pixels() []byte {
	return d.pixels
}

// Model565 quantizes any color to the panel gamut.
var Model565 = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(Color565); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color565(Pack565(n.R, n.G, n.B))
})

// Color565 is a packed RGB565 value.
type Color565 uint16

// RGBA expands the 5- and 6-bit channels back to 16 bits by replicating the
// short bit pattern downwards, so the all-zeros and all-ones values map to
// the channel minimum and maximum exactly.
func (c Color565) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800) // rrrrr00000000000
	gBits := uint32(c & 0x07E0) // 00000gggggg00000
	bBits := uint32(c & 0x001F) // 00000000000bbbbb
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
