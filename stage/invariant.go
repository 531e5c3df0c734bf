package stage

import "fmt"

// CheckInvariants verifies the structural properties that must hold at
// every quiescent point: tile conservation, per-seat hand size, turn range.
// It returns the first violation found, or nil.
// Intended for use from tests driving random event sequences, not from the
// hot reducer path.
func CheckInvariants(s *Stage) error {
	total := 0
	for _, n := range s.CountTileStates() {
		total += n
	}
	if total != totalPhysicalTiles {
		return fmt.Errorf("tile conservation: %d physical tiles accounted for, want %d", total, totalPhysicalTiles)
	}

	for seat := Seat(0); seat < NumSeats; seat++ {
		p := &s.Players[seat]
		n := p.HandSize()
		if n != 13 && n != 14 {
			return fmt.Errorf("seat %d hand-size invariant: got %d, want 13 or 14", seat, n)
		}
	}

	if s.Turn < 0 || s.Turn >= NumSeats {
		return fmt.Errorf("turn %d out of range", s.Turn)
	}

	return nil
}
