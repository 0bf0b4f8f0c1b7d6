package fanout

import (
	"image"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"img565/pkg/proto"
)

// Blocks mirrors the raster tile by tile in shuffled order, a cheap reveal
// effect over slow links.
func Blocks() Strategy {
	return &blocks{
		size: 32,
		rand: true,
	}
}

type blocks struct {
	size int
	rand bool
}

func (e *blocks) Name() string {
	return "blocks"
}

func (e *blocks) Process(img Image) (<-chan Write, error) {
	wc := make(chan Write)

	go func() {
		r := img.Bounds()

		size := e.size
		if e.rand {
			rand.Seed(time.Now().UnixNano())
			size = rand.Intn(32) + 8
		}

		var ws []Write
		for x := r.Min.X; x < r.Max.X; x += size {
			for y := r.Min.Y; y < r.Max.Y; y += size {
				tile := img.SubImage(image.Rect(x, y, x+size, y+size))
				at := image.Pt(x-r.Min.X, y-r.Min.Y)

				ws = append(ws,
					Write{Screen: proto.ScreenLeft, At: at, Img: tile},
					Write{Screen: proto.ScreenRight, At: at, Img: tile},
				)
			}
		}

		if e.rand {
			lo.Shuffle(ws)
		}

		for _, w := range ws {
			wc <- w
		}

		close(wc)
	}()

	return wc, nil
}
