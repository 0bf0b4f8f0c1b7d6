// Package bot drives conversions over Telegram: send an image, tune size and
// fit, then pull the encoded binary back or push it onto the panels.
package bot

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/inhies/go-bytesize"
	tele "gopkg.in/telebot.v3"

	"img565/pkg/convert"
	"img565/pkg/fanout"
	"img565/pkg/proto"
	"img565/pkg/source"
)

func New(token string, dev proto.Control, session *convert.Session, fetcher *source.Fetcher, pusher *fanout.Pusher) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:       b,
		dev:     dev,
		session: session,
		fetcher: fetcher,
		pusher:  pusher,
		hist:    newHistory(),
		light:   100,
	}, nil
}

type Bot struct {
	b       *tele.Bot
	dev     proto.Control
	session *convert.Session
	fetcher *source.Fetcher
	pusher  *fanout.Pusher
	hist    *history

	mu      sync.Mutex
	pending convert.Dimensions
	light   uint8
}

// target is the size the next load will resize to: whatever the session
// resized to last, or a /size given before any image arrived.
func (b *Bot) target() (convert.Dimensions, bool) {
	if d, ok := b.session.Target(); ok {
		return d, true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending, b.pending.Width > 0
}

// loaded resizes a fresh source to the active target, falling back to the
// source size so a bare upload converts 1:1.
func (b *Bot) loaded() string {
	src, ok := b.session.SourceDimensions()
	if !ok {
		return "no image loaded"
	}

	target, ok := b.target()
	if !ok {
		target = src
	}

	if err := b.session.Resize(target); err != nil {
		return fmt.Sprintf("resize failed: %s", err)
	}

	return fmt.Sprintf("Loaded %s, resized to %s (%s)", src, target,
		bytesize.New(float64(2*target.Width*target.Height)).String())
}

func (b *Bot) handleIntake() {
	load := func(c tele.Context, file *tele.File, ref string) error {
		rc, err := b.b.File(file)
		if err != nil {
			return c.Reply(fmt.Sprintf("get file failed: %s", err))
		}

		defer func() {
			_ = rc.Close()
		}()

		bs, err := io.ReadAll(rc)
		if err != nil {
			return c.Reply(fmt.Sprintf("get file failed: %s", err))
		}

		if err := b.session.Load(bytes.NewReader(bs)); err != nil {
			return c.Reply(fmt.Sprintf("load failed: %s", err))
		}

		b.hist.Add(ref, bs)
		return c.Reply(b.loaded())
	}

	b.b.Handle(tele.OnPhoto, func(c tele.Context) error {
		return load(c, &c.Message().Photo.File, "photo")
	})

	b.b.Handle(tele.OnDocument, func(c tele.Context) error {
		doc := c.Message().Document
		return load(c, &doc.File, doc.FileName)
	})

	b.b.Handle("/fetch", func(c tele.Context) error {
		in := c.Message().Payload
		if in == "" {
			return c.Reply("usage: /fetch <url>")
		}

		bs, err := b.fetcher.Fetch(in)
		if err != nil {
			return c.Reply(fmt.Sprintf("fetch failed: %s", err))
		}

		if err := b.session.Load(bytes.NewReader(bs)); err != nil {
			return c.Reply(fmt.Sprintf("load failed: %s", err))
		}

		b.hist.Add(in, bs)
		return c.Reply(b.loaded())
	})

	b.b.Handle("/prev", func(c tele.Context) error {
		e := b.hist.Prev()
		if e == nil {
			return c.Reply("no previous image")
		}

		if err := b.session.Load(bytes.NewReader(e.raw)); err != nil {
			return c.Reply(fmt.Sprintf("load failed: %s", err))
		}

		b.hist.Add(e.ref, e.raw)
		return c.Reply(b.loaded())
	})

	b.b.Handle("/history", func(c tele.Context) error {
		refs := b.hist.Refs()
		if len(refs) == 0 {
			return c.Reply("nothing loaded yet")
		}

		return c.Reply(strings.Join(refs, "\n"))
	})
}

func (b *Bot) handleConfig() {
	b.b.Handle("/size", func(c tele.Context) error {
		in := c.Message().Payload
		if in == "" {
			if d, ok := b.target(); ok {
				return c.Reply(d.String())
			}
			return c.Reply("no size set")
		}

		d, err := convert.ParseSize(in)
		if err != nil {
			return c.Reply(fmt.Sprintf("change failed: %s", err))
		}

		if err := b.session.Resize(d); err != nil {
			if errors.Is(err, convert.ErrNoImage) {
				b.mu.Lock()
				b.pending = d
				b.mu.Unlock()
				return c.Reply(fmt.Sprintf("Will resize to %s", d))
			}
			return c.Reply(fmt.Sprintf("resize failed: %s", err))
		}

		return c.Reply("OK")
	})

	b.b.Handle("/fit", func(c tele.Context) error {
		in := c.Message().Payload
		if in == "" {
			return c.Reply(b.session.Fit().String())
		}

		f, err := convert.ParseFit(in)
		if err != nil {
			return c.Reply(fmt.Sprintf("change failed: %s", err))
		}

		b.session.SetFit(f)

		if d, ok := b.session.Target(); ok && b.session.State() == convert.Loaded {
			if err := b.session.Resize(d); err != nil {
				return c.Reply(fmt.Sprintf("resize failed: %s", err))
			}
		}

		return c.Reply("OK")
	})

	b.b.Handle("/status", func(c tele.Context) error {
		lines := []string{
			fmt.Sprintf("State: %s", b.session.State()),
			fmt.Sprintf("Fit: %s", b.session.Fit()),
		}

		if d, ok := b.session.SourceDimensions(); ok {
			lines = append(lines, fmt.Sprintf("Source: %s", d))
		}

		if d, ok := b.target(); ok {
			lines = append(lines, fmt.Sprintf("Target: %s", d))
		}

		b.mu.Lock()
		light := b.light
		b.mu.Unlock()
		lines = append(lines, fmt.Sprintf("Light: %d", light))

		return c.Reply(strings.Join(lines, "\n"))
	})
}

func (b *Bot) handleExport() {
	b.b.Handle("/bin", func(c tele.Context) error {
		bs, err := b.session.Encode()
		if err != nil {
			return c.Reply(fmt.Sprintf("encode failed: %s", err))
		}

		d, _ := b.session.Target()
		doc := &tele.Document{
			File:     tele.FromReader(bytes.NewReader(bs)),
			FileName: fmt.Sprintf("frame_%s.bin", d),
		}

		return c.Reply(doc)
	})

	b.b.Handle("/preview", func(c tele.Context) error {
		img, ok := b.session.Resized()
		if !ok {
			return c.Reply("nothing resized yet")
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return c.Reply(fmt.Sprintf("preview failed: %s", err))
		}

		return c.Reply(&tele.Photo{File: tele.FromReader(&buf)})
	})
}

func (b *Bot) handleDevice() {
	b.b.Handle("/open", func(c tele.Context) error {
		if err := b.dev.Startup(); err != nil {
			return c.Reply(fmt.Sprintf("open failed: %s", err))
		}

		return c.Reply("OK")
	})

	b.b.Handle("/close", func(c tele.Context) error {
		if err := b.dev.Shutdown(); err != nil {
			return c.Reply(fmt.Sprintf("close failed: %s", err))
		}

		return c.Reply("OK")
	})

	b.b.Handle("/light", func(c tele.Context) error {
		in := c.Message().Payload
		if in == "" {
			b.mu.Lock()
			light := b.light
			b.mu.Unlock()
			return c.Reply(strconv.Itoa(int(light)))
		}

		parsed, err := strconv.ParseUint(in, 10, 8)
		if err != nil {
			return c.Reply(fmt.Sprintf("change failed: %s", err))
		}

		if err := b.dev.SetLight(uint8(parsed)); err != nil {
			return c.Reply(fmt.Sprintf("change failed: %s", err))
		}

		b.mu.Lock()
		b.light = uint8(parsed)
		b.mu.Unlock()
		return c.Reply("OK")
	})

	b.b.Handle("/push", func(c tele.Context) error {
		img, ok := b.session.Resized()
		if !ok {
			return c.Reply("nothing resized yet")
		}

		in := c.Message().Payload
		if in == "" {
			if err := b.pusher.Push(img); err != nil {
				return c.Reply(fmt.Sprintf("push failed: %s", err))
			}
			return c.Reply("OK")
		}

		strat, err := fanout.Parse(in)
		if err != nil {
			return c.Reply(fmt.Sprintf("push failed: %s", err))
		}

		if err := b.pusher.PushWith(strat, img); err != nil {
			return c.Reply(fmt.Sprintf("push failed: %s", err))
		}

		return c.Reply("OK")
	})
}

func (b *Bot) Start() {
	b.handleIntake()
	b.handleConfig()
	b.handleExport()
	b.handleDevice()
	go b.b.Start()
}

func (b *Bot) Stop() {
	// telebot Stop blocks until the long poller returns
	go b.b.Stop()
}
