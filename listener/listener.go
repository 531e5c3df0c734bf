// Package listener implements the side-effect-free event fan-out:
// observers register a Listener and see every event, in order, after the
// Stage has processed it.
package listener

import (
	"encoding/json"
	"io"
	"sync"

	"riichi/log"
	"riichi/stage"
)

// Listener is notified once per event, strictly in Stage-processing order,
// after the Stage has already been updated. Notify must be total and
// non-failing.
type Listener interface {
	Notify(e stage.Event)
}

// envelope is the wire shape the log-writer/replay adapters consume:
// {"type": <Variant>, "data": {...}}.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func eventTypeName(e stage.Event) string {
	switch e.(type) {
	case stage.EventBegin:
		return "Begin"
	case stage.EventNew:
		return "New"
	case stage.EventDeal:
		return "Deal"
	case stage.EventDiscard:
		return "Discard"
	case stage.EventMeld:
		return "Meld"
	case stage.EventKita:
		return "Kita"
	case stage.EventDora:
		return "Dora"
	case stage.EventWin:
		return "Win"
	case stage.EventDraw:
		return "Draw"
	case stage.EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// JSONListener writes one {"type","data"} JSON object per line to w. It is
// the reference implementation a replay/log-writer adapter would use.
type JSONListener struct {
	mu sync.Mutex
	w  io.Writer
}

func NewJSONListener(w io.Writer) *JSONListener { return &JSONListener{w: w} }

func (l *JSONListener) Notify(e stage.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Error("listener: failed to marshal event %T: %v", e, err)
		return
	}
	env := envelope{Type: eventTypeName(e), Data: data}
	out, err := json.Marshal(env)
	if err != nil {
		log.Error("listener: failed to marshal envelope: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.w.Write(out); err != nil {
		log.Error("listener: write failed: %v", err)
		return
	}
	_, _ = l.w.Write([]byte("\n"))
}

// MultiListener fans one event out to every registered listener, in
// registration order.
type MultiListener struct {
	listeners []Listener
}

func NewMultiListener(ls ...Listener) *MultiListener {
	return &MultiListener{listeners: append([]Listener(nil), ls...)}
}

func (m *MultiListener) Add(l Listener) { m.listeners = append(m.listeners, l) }

func (m *MultiListener) Notify(e stage.Event) {
	for _, l := range m.listeners {
		l.Notify(e)
	}
}
