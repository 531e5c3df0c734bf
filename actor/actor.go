// Package actor defines the opaque decision-making interface the Controller
// calls back into at each decision point, plus the handful of built-in
// reference policies used in tests. An Actor is a (Config, SelectAction)
// pair rather than a class hierarchy, and a Config is just {name, args} so
// a driver can reconstruct an Actor from a plain string.
package actor

import (
	"fmt"

	"riichi/action"
	"riichi/stage"
)

// Config names an Actor and its construction arguments.
type Config struct {
	Name string
	Args []string
}

// Actor is consulted synchronously by the Controller after every event that
// opens a decision point. It must return one of the Actions it was offered
// (or Nop if none apply / it chooses to pass). Actors receive a read-only
// Stage and must not mutate it. Clone returns an independent copy with any
// internal state (e.g. an RNG) reseeded or copied, not shared, so a
// Controller can seed all four seats from one configured instance.
type Actor interface {
	// Init tells the Actor which seat it has been assigned.
	Init(seat stage.Seat)
	// SelectAction must return one of acts verbatim (or the zero Nop
	// Action if acts is empty / nothing is chosen).
	SelectAction(s *stage.Stage, seat stage.Seat, acts []action.Action) action.Action
	// Config returns the configuration this Actor was built from.
	Config() Config
	// Clone returns an independent copy suitable for seeding another seat.
	Clone() Actor
}

// Builder constructs an Actor from a Config. Built-ins register themselves
// in the package-level registry via init(); a driver adds its own bot
// policies the same way.
type Builder func(Config) Actor

var registry = map[string]Builder{}

// Register adds name to the Actor registry. Re-registering a name replaces
// the previous Builder (mirrors a driver overriding a built-in reference
// policy with its own bot under the same name).
func Register(name string, b Builder) { registry[name] = b }

// New constructs the Actor named by cfg.Name. Returns an error (not a
// panic): a config file naming an unknown actor is a user-facing mistake,
// not an engine bug.
func New(cfg Config) (Actor, error) {
	b, ok := registry[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("actor: unknown actor %q", cfg.Name)
	}
	return b(cfg), nil
}

func init() {
	Register("Nop", func(cfg Config) Actor { return &NopActor{cfg: cfg} })
	Register("RandomDiscard", func(cfg Config) Actor { return NewRandomDiscard(cfg) })
}

// NopActor always returns Nop; the minimal built-in, used as a filler for
// seats a driver doesn't want to drive.
type NopActor struct {
	cfg  Config
	seat stage.Seat
}

func NewNop() *NopActor { return &NopActor{cfg: Config{Name: "Nop"}} }

func (a *NopActor) Init(seat stage.Seat) { a.seat = seat }

func (a *NopActor) SelectAction(_ *stage.Stage, _ stage.Seat, _ []action.Action) action.Action {
	return action.Action{Type: action.Nop}
}

func (a *NopActor) Config() Config { return a.cfg }

func (a *NopActor) Clone() Actor { return &NopActor{cfg: a.cfg} }
