package bitmap

import (
	"image"
	"image/color"
)

// NewRGB returns an empty 24-bit raster with the given bounds.
func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

// RGB is a packed 3-bytes-per-pixel raster. Every decoded source is
// normalized into this form before anything else happens to it: no alpha,
// no palette, 8 bits per channel.
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) ColorModel() color.Model { return RGBModel }

func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	return color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xFF}
}

// Set implements the draw.Image interface. Alpha is dropped, not blended:
// the color is read back non-premultiplied and the alpha channel discarded.
func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.Pix[i] = n.R
	p.Pix[i+1] = n.G
	p.Pix[i+2] = n.B
}

// SubImage returns an image sharing pixels with p, visible through r.
func (p *RGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB{}
	}
	return &RGB{
		Pix:    p.Pix[p.PixOffset(r.Min.X, r.Min.Y):],
		Stride: p.Stride,
		Rect:   r,
	}
}

// RGBModel reduces any color to its 8-bit channels with alpha discarded.
var RGBModel = color.ModelFunc(func(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xFF
	return n
})

// FromImage normalizes src into an RGB raster anchored at (0,0). Grayscale
// expands to R=G=B, paletted and alpha sources go through the color model.
func FromImage(src image.Image) *RGB {
	if p, ok := src.(*RGB); ok && p.Rect.Min == (image.Point{}) {
		return p
	}

	b := src.Bounds()
	dst := NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			si := s.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Stride
			for x := 0; x < b.Dx(); x++ {
				dst.Pix[di] = s.Pix[si]
				dst.Pix[di+1] = s.Pix[si+1]
				dst.Pix[di+2] = s.Pix[si+2]
				si += 4
				di += 3
			}
		}
	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			si := s.PixOffset(b.Min.X, b.Min.Y+y)
			di := y * dst.Stride
			for x := 0; x < b.Dx(); x++ {
				v := s.Pix[si+x]
				dst.Pix[di] = v
				dst.Pix[di+1] = v
				dst.Pix[di+2] = v
				di += 3
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
			}
		}
	}

	return dst
}
