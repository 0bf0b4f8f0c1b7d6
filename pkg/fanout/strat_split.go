package fanout

import (
	"image"

	"github.com/pkg/errors"

	"img565/pkg/proto"
)

// Split spreads a double-wide raster across the pair, left half to the left
// screen and right half to the right.
func Split() Strategy {
	return split{}
}

type split struct{}

func (split) Name() string {
	return "split"
}

func (split) Process(img Image) (<-chan Write, error) {
	r := img.Bounds()
	if r.Dx()%2 != 0 {
		return nil, errors.New("width not splittable")
	}

	mid := r.Min.X + r.Dx()/2
	wc := make(chan Write)

	go func() {
		wc <- Write{
			Screen: proto.ScreenLeft,
			Img:    img.SubImage(image.Rect(r.Min.X, r.Min.Y, mid, r.Max.Y)),
		}
		wc <- Write{
			Screen: proto.ScreenRight,
			Img:    img.SubImage(image.Rect(mid, r.Min.Y, r.Max.X, r.Max.Y)),
		}
		close(wc)
	}()

	return wc, nil
}
