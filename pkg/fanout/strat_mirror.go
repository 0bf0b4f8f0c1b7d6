package fanout

import (
	"img565/pkg/proto"
)

// Mirror shows the same raster on both screens, the usual mode for a pair of
// eyes.
func Mirror() Strategy {
	return mirror{}
}

type mirror struct{}

func (mirror) Name() string {
	return "mirror"
}

func (mirror) Process(img Image) (<-chan Write, error) {
	wc := make(chan Write)

	go func() {
		for _, s := range []uint8{proto.ScreenLeft, proto.ScreenRight} {
			wc <- Write{Screen: s, Img: img}
		}
		close(wc)
	}()

	return wc, nil
}
