// Package controller drives the event loop: it holds the Stage, the four
// Actors, and the registered Listeners, applies events to the Stage,
// queries actors for their chosen Actions, resolves call priority, and
// notifies listeners in registration order. Everything is synchronous:
// there are no suspension points or timeouts at this level.
package controller

import (
	"fmt"

	"github.com/google/uuid"

	"riichi/action"
	"riichi/actor"
	"riichi/config"
	"riichi/listener"
	"riichi/log"
	"riichi/stage"
	"riichi/tile"
)

// State tracks where the turn cycle currently is (idle / wait-main /
// selecting / wait-reactions / apply-operation), mostly for observers and
// debugging; the synchronous loop never blocks in any of them.
type State int

const (
	StateIdle State = iota
	StateWaitMain
	StateSelecting
	StateWaitReactions
	StateApplyOperation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaitMain:
		return "wait_main"
	case StateSelecting:
		return "selecting"
	case StateWaitReactions:
		return "wait_reactions"
	case StateApplyOperation:
		return "apply_operation"
	default:
		return "?"
	}
}

// Controller owns the Stage exclusively and is the sole caller of
// stage.Apply in a running game.
type Controller struct {
	ID        string
	Stage     *stage.Stage
	Engine    *action.Engine
	Rules     config.Rules
	Actors    [stage.NumSeats]actor.Actor
	Listeners *listener.MultiListener
	State     State

	anyCallsYet bool        // some chi/pon/kan has been declared this round
	wall        []tile.Tile // live wall, drawn from the front (kan replacement tiles included)
	deadWall    []tile.Tile // dead wall: dora and ura indicators

	justDrewRinshan bool                 // current turn's draw was a kan replacement (rinshan kaihou)
	tenhouEligible  bool                 // current turn is the dealer's untouched first draw
	chiihouEligible bool                 // current turn is a non-dealer's untouched first draw
	firstTurnTaken  [stage.NumSeats]bool // whether each seat has drawn at least once this round
}

// New constructs a Controller over four Actors, calling Init on each.
// Listeners fire in the order given.
func New(rules config.Rules, actors [stage.NumSeats]actor.Actor, listeners ...listener.Listener) *Controller {
	for seat, a := range actors {
		a.Init(stage.Seat(seat))
	}
	return &Controller{
		ID:        uuid.NewString(),
		Stage:     stage.New(),
		Engine:    action.NewEngine(rules),
		Rules:     rules,
		Actors:    actors,
		Listeners: listener.NewMultiListener(listeners...),
		State:     StateIdle,
	}
}

// emit applies e to the Stage, then notifies every Listener. This is the
// one chokepoint every event — whether synthesized by self-play or handed
// in by an external driver — passes through.
func (c *Controller) emit(e stage.Event) {
	stage.Apply(c.Stage, e)
	c.Listeners.Notify(e)
}

// HandleEvent is the live-adapter entry point: the external driver is
// responsible for turning chosen Actions into the next Event, and calls
// HandleEvent once per upstream event. The Controller applies it to the
// Stage and fans it out to listeners exactly as the self-play loop does
// internally.
func (c *Controller) HandleEvent(e stage.Event) {
	c.emit(e)
}

// SelectAction delegates to actors[seat] and validates the result is one
// of the offered acts (or Nop) before returning it. An actor returning
// anything else is a driver/bot bug and treated as an invariant
// violation.
func (c *Controller) SelectAction(seat stage.Seat, acts []action.Action) action.Action {
	if len(acts) == 0 {
		return action.Action{Type: action.Nop}
	}
	chosen := c.Actors[seat].SelectAction(c.Stage, seat, acts)
	if !actionOffered(acts, chosen) {
		log.Error("controller: seat %d actor returned illegal action %s", seat, chosen.Type)
		panic(fmt.Sprintf("controller: seat %d actor returned illegal action %s", seat, chosen.Type))
	}
	return chosen
}

// actionOffered validates an actor's chosen Action against what TurnActions
// or CallActions actually offered. Discard and Riichi are offered as one
// Action whose Tiles field is the *candidate list*, and the actor must
// return exactly one of those candidates. Every other type names one concrete
// alternative per Action, so the actor's Tiles must match one verbatim
// (as a multiset, since ordering is an engine implementation detail for
// pairs like Pon/Chi).
func actionOffered(acts []action.Action, chosen action.Action) bool {
	if chosen.Type == action.Nop {
		return true
	}
	for _, a := range acts {
		if a.Type != chosen.Type {
			continue
		}
		switch a.Type {
		case action.Discard, action.Riichi:
			if len(chosen.Tiles) == 1 && containsTile(a.Tiles, chosen.Tiles[0]) {
				return true
			}
		default:
			if sameTileMultiset(a.Tiles, chosen.Tiles) {
				return true
			}
		}
	}
	return false
}

func containsTile(tiles []tile.Tile, t tile.Tile) bool {
	for _, c := range tiles {
		if c == t {
			return true
		}
	}
	return false
}

func sameTileMultiset(a, b []tile.Tile) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for i, y := range b {
			if !used[i] && x == y {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
