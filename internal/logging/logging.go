// Package logging builds the slog loggers used by the demo host and the
// editor widgets.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}

// New returns a text logger writing to w. A nil w discards everything.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Entry is one record kept by a Ring.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// String formats the entry as "LEVEL message k=v ..." with keys sorted.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		fmt.Fprintf(&sb, " %s=%s", k, e.Attrs[k])
	}
	return sb.String()
}

type ringStore struct {
	mu      sync.RWMutex
	entries []Entry
	max     int
}

// Ring is a slog.Handler keeping the most recent records in memory, so a
// full-screen host can show them without writing to the terminal.
type Ring struct {
	store *ringStore
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewRing keeps up to max entries at or above level.
func NewRing(max int, level slog.Leveler) *Ring {
	if max <= 0 {
		max = 100
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &Ring{store: &ringStore{max: max}, level: level}
}

func (h *Ring) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Ring) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]string, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[h.key(a.Key)] = a.Value.String()
		return true
	})

	s := h.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Time: r.Time, Level: r.Level, Message: r.Message, Attrs: attrs})
	if len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
	return nil
}

func (h *Ring) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr(nil), h.attrs...)
	for _, a := range attrs {
		a.Key = h.key(a.Key)
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *Ring) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.key(name)
	return &next
}

func (h *Ring) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

// Entries returns a copy of the kept records, oldest first.
func (h *Ring) Entries() []Entry {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return append([]Entry(nil), h.store.entries...)
}

// Last returns the most recent record.
func (h *Ring) Last() (Entry, bool) {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	if len(h.store.entries) == 0 {
		return Entry{}, false
	}
	return h.store.entries[len(h.store.entries)-1], true
}
