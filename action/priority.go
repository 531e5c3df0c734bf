package action

import "riichi/stage"

// Resolution is the single winning reaction to a discard/kakan, chosen
// across all four seats by Resolve (ron > minkan/pon > chi). A Ron
// resolution may name multiple seats at once
// (multi-ron, atamahane-ordered); every other resolution names exactly one
// seat and exactly one Action.
type Resolution struct {
	Type    Type
	Seats   []stage.Seat // winners, in atamahane order, for Ron; one seat otherwise
	Actions []Action     // per-seat chosen Action, parallel to Seats
}

// Resolve picks the single reaction that actually fires given what every
// seat declared it wants to do. reactions maps each
// reacting seat to the Action it chose from its own CallActions(); a seat
// that chooses not to call (or has nothing to call) is simply absent.
//
// Priority: any Ron beats any Minkan/Pon, which beat any Chi. Multiple
// simultaneous Rons all fire (multi-ron), ordered counterclockwise starting
// from the seat immediately after the discarder (atamahane: the discarder
// pays every winner, but turn/furiten bookkeeping proceeds in this order).
// Among non-Ron calls, Minkan/Pon outrank Chi; if two different seats both
// declare Pon/Minkan on the same discard (impossible under normal
// single-discarder rules but kept for robustness) the one closer to the
// discarder, counterclockwise, wins.
func Resolve(discarder stage.Seat, reactions map[stage.Seat]Action) *Resolution {
	var rons []stage.Seat
	for seat, a := range reactions {
		if a.Type == Ron {
			rons = append(rons, seat)
		}
	}
	if len(rons) > 0 {
		ordered := atamahaneOrder(discarder, rons)
		actions := make([]Action, len(ordered))
		for i, seat := range ordered {
			actions[i] = reactions[seat]
		}
		return &Resolution{Type: Ron, Seats: ordered, Actions: actions}
	}

	if seat, a, ok := bestOfType(discarder, reactions, Minkan, Pon); ok {
		return &Resolution{Type: a.Type, Seats: []stage.Seat{seat}, Actions: []Action{a}}
	}

	if seat, a, ok := bestOfType(discarder, reactions, Chi); ok {
		return &Resolution{Type: a.Type, Seats: []stage.Seat{seat}, Actions: []Action{a}}
	}

	return nil
}

// atamahaneOrder sorts seats counterclockwise starting immediately after
// discarder (the order play would naturally reach them).
func atamahaneOrder(discarder stage.Seat, seats []stage.Seat) []stage.Seat {
	rank := func(s stage.Seat) int {
		return int(s-discarder+stage.NumSeats) % stage.NumSeats
	}
	out := append([]stage.Seat(nil), seats...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && rank(out[j]) < rank(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// bestOfType returns the closest-to-discarder (counterclockwise) seat whose
// reaction matches one of types, if any.
func bestOfType(discarder stage.Seat, reactions map[stage.Seat]Action, types ...Type) (stage.Seat, Action, bool) {
	match := func(t Type) bool {
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}
	best := -1
	var bestSeat stage.Seat
	var bestAction Action
	for seat, a := range reactions {
		if !match(a.Type) {
			continue
		}
		r := int(seat-discarder+stage.NumSeats) % stage.NumSeats
		if best == -1 || r < best {
			best = r
			bestSeat = seat
			bestAction = a
		}
	}
	if best == -1 {
		return 0, Action{}, false
	}
	return bestSeat, bestAction, true
}
