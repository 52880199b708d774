package view

import "sync"

// History records navigable entries and reports externally triggered
// back/forward navigation. Push must never fire the pop callback; only
// history-originated moves do. The callback receives the entry URL alone:
// the pushed state payload is stored but deliberately never read back, so
// the URL stays the single source of truth.
type History interface {
	Push(state State, url string)
	OnPopState(fn func(url string))
}

type historyEntry struct {
	state State
	url   string
}

// MemoryHistory is an in-process History with browser semantics: a stack of
// entries and a cursor. Pushing truncates everything after the cursor, just
// as a browser drops the forward list when the user navigates somewhere new.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []historyEntry
	index   int
	onPop   func(url string)
}

// NewMemoryHistory creates a history whose first entry is initialURL.
func NewMemoryHistory(initialURL string) *MemoryHistory {
	return &MemoryHistory{
		entries: []historyEntry{{state: ParseURL(initialURL), url: initialURL}},
	}
}

// Push records a new entry after the current one and drops the forward tail.
func (h *MemoryHistory) Push(state State, url string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], historyEntry{state: state, url: url})
	h.index = len(h.entries) - 1
}

// OnPopState registers the callback invoked by Back and Forward.
func (h *MemoryHistory) OnPopState(fn func(url string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPop = fn
}

// Back moves the cursor one entry back and hands the entry URL to the pop
// callback. It reports whether a move happened.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	url := h.entries[h.index].url
	fn := h.onPop
	h.mu.Unlock()

	if fn != nil {
		fn(url)
	}
	return true
}

// Forward moves the cursor one entry forward and hands the entry URL to the
// pop callback. It reports whether a move happened.
func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	if h.index >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.index++
	url := h.entries[h.index].url
	fn := h.onPop
	h.mu.Unlock()

	if fn != nil {
		fn(url)
	}
	return true
}

// Current returns the URL of the active entry.
func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index].url
}

// Len returns the number of recorded entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
