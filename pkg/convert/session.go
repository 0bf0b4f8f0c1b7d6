package convert

import (
	"io"
	"sync"

	"img565/pkg/bitmap"
)

// State tracks which pipeline artifacts a session currently holds.
type State uint8

const (
	// Empty means no source has been loaded yet.
	Empty State = iota
	// Loaded means a source is present but not resized, or the resized
	// raster went stale.
	Loaded
	// Resized means the resized raster matches the current source and
	// target, so encoding is allowed.
	Resized
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Resized:
		return "resized"
	}

	return "unknown"
}

// Option configures a new Session.
type Option func(*Session)

// WithFit sets the initial fit mode.
func WithFit(f Fit) Option {
	return func(s *Session) { s.fit = f }
}

// Session owns one source/resized raster pair and guards the order of
// operations on it: load, then resize, then encode. Every error leaves the
// pair intact, so a session is reusable for any number of cycles and never
// reaches a terminal state. Methods serialize through an internal mutex so
// shells may call from handler goroutines.
type Session struct {
	mu      sync.Mutex
	fit     Fit
	state   State
	source  *bitmap.RGB
	resized *bitmap.RGB
	target  Dimensions
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load decodes a fresh source from r. On success any previous pair is
// replaced and the session moves to Loaded; on failure the session keeps
// whatever it had before, resized raster included.
func (s *Session) Load(r io.Reader) error {
	img, err := Decode(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.source = img
	s.resized = nil
	s.state = Loaded
	return nil
}

// Resize recomputes the resized raster from the current source, always from
// the source, never from a previous resize. Invalid dimensions are rejected
// before any computation and leave state and rasters untouched.
func (s *Session) Resize(d Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Empty {
		return ErrNoImage
	}

	if s.fit == FitCover {
		s.resized = Cover(s.source, d)
	} else {
		s.resized = Resize(s.source, d)
	}

	s.target = d
	s.state = Resized
	return nil
}

// Encode serializes the resized raster to RGB565 bytes. Valid only in the
// Resized state.
func (s *Session) Encode() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Empty:
		return nil, ErrNoImage
	case Loaded:
		return nil, ErrNotResized
	}

	return bitmap.Encode(s.resized), nil
}

// SetFit switches the mapping mode. An existing resized raster no longer
// matches the mode, so the session drops back to Loaded until the next
// Resize.
func (s *Session) SetFit(f Fit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f == s.fit {
		return
	}

	s.fit = f
	if s.state == Resized {
		s.resized = nil
		s.state = Loaded
	}
}

func (s *Session) Fit() Fit {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fit
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// SourceDimensions reports the decoded source size, the natural default
// target for shells that prefill their width and height fields.
func (s *Session) SourceDimensions() (Dimensions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Empty {
		return Dimensions{}, false
	}

	b := s.source.Bounds()
	return Dimensions{Width: b.Dx(), Height: b.Dy()}, true
}

// Target reports the dimensions of the last successful resize. It survives
// the drop back to Loaded so shells can rerun Resize with the same target.
func (s *Session) Target() (Dimensions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.target, s.target.Width > 0
}

// Resized hands out the current resized raster, for previews and device
// blits. Callers must not modify it; Resize replaces rather than reuses the
// raster, so concurrent readers stay safe.
func (s *Session) Resized() (*bitmap.RGB, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Resized {
		return nil, false
	}

	return s.resized, true
}
