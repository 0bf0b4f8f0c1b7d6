package fanout

import (
	"github.com/samber/lo"

	"img565/pkg/proto"
)

func NewPusher(dst proto.Control, opts ...Option) *Pusher {
	p := &Pusher{
		dev: dst,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Pusher struct {
	dev    proto.Control
	strats []Strategy
}

// Push sends img through one of the configured strategies, picked at random.
// With none configured it mirrors.
func (p *Pusher) Push(img Image) error {
	strat := lo.Sample(p.strats)
	if strat == nil {
		strat = Mirror()
	}

	return p.PushWith(strat, img)
}

// PushWith replays the writes of one specific strategy. The stream is always
// drained, so a mid-push device error cannot strand the producer.
func (p *Pusher) PushWith(strat Strategy, img Image) error {
	w, err := strat.Process(img)
	if err != nil {
		return err
	}

	for w2 := range w {
		if err != nil {
			continue
		}

		err = p.dev.Blit(w2.Screen, uint16(w2.At.X), uint16(w2.At.Y), w2.Img)
	}

	return err
}
