package listener

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"riichi/stage"
	"riichi/tile"
)

func TestJSONListenerWritesTypeDataEnvelope(t *testing.T) {
	r := require.New(t)
	var buf bytes.Buffer
	l := NewJSONListener(&buf)

	l.Notify(stage.EventDeal{Seat: 2, Tile: tile.New(tile.Pin, 7)})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	r.Len(lines, 1)

	var env envelope
	r.NoError(json.Unmarshal([]byte(lines[0]), &env))
	r.Equal("Deal", env.Type)

	var payload struct {
		Seat stage.Seat
		Tile tile.Tile
	}
	r.NoError(json.Unmarshal(env.Data, &payload))
	r.Equal(stage.Seat(2), payload.Seat)
	r.Equal(tile.New(tile.Pin, 7), payload.Tile)
}

func TestJSONListenerOneLinePerEvent(t *testing.T) {
	r := require.New(t)
	var buf bytes.Buffer
	l := NewJSONListener(&buf)

	l.Notify(stage.EventBegin{})
	l.Notify(stage.EventDora{Tile: tile.New(tile.Man, 1)})
	l.Notify(stage.EventEnd{})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	r.Len(lines, 3)
	for i, want := range []string{"Begin", "Dora", "End"} {
		var env envelope
		r.NoError(json.Unmarshal([]byte(lines[i]), &env))
		r.Equal(want, env.Type)
	}
}

type recording struct {
	name string
	log  *[]string
}

func (r recording) Notify(stage.Event) { *r.log = append(*r.log, r.name) }

func TestMultiListenerNotifiesInRegistrationOrder(t *testing.T) {
	var seen []string
	m := NewMultiListener(recording{"a", &seen}, recording{"b", &seen})
	m.Add(recording{"c", &seen})

	m.Notify(stage.EventBegin{})
	require.Equal(t, []string{"a", "b", "c"}, seen)
}
