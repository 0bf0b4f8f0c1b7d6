package bot

import (
	"sync"

	"github.com/samber/lo"
)

func newHistory() *history {
	return &history{max: 3}
}

// history keeps the last few loaded sources so /prev can step back. Entries
// hold the original bytes, so replaying one goes through the same decode and
// resize as a fresh upload.
type history struct {
	mu    sync.Mutex
	max   int
	items []*entry
}

type entry struct {
	ref string
	raw []byte
}

func (h *history) Add(ref string, raw []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, &entry{ref: ref, raw: raw})
	if len(h.items) > h.max {
		h.items = h.items[1:]
	}
}

func (h *history) Refs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var refs []string
	for _, e := range h.items {
		refs = append(refs, e.ref)
	}
	return refs
}

func (h *history) Curr() *entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, _ := lo.Last(h.items)
	return e
}

// Prev returns the entry before the current one, nil when there is no
// further back to go.
func (h *history) Prev() *entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, _ := lo.Nth(h.items, -2)
	return e
}
