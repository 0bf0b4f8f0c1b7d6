package fanout

type Option func(p *Pusher)

func WithStrategy(s ...Strategy) Option {
	return func(p *Pusher) {
		p.strats = s
	}
}
