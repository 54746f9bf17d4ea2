package conundrum

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned when the goal is not reachable from the
// input state. The search proves this by exhausting the reachable
// component rather than by a parity pre-check.
var ErrNoSolution = errors.New("no solution")

// InvalidStateError rejects boards that are not a permutation of {0..7}.
type InvalidStateError struct {
	Reason string
}

func (e InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}

// InvalidMoveError rejects slides of tiles not adjacent to the blank.
type InvalidMoveError struct {
	Tile Tile
}

func (e InvalidMoveError) Error() string {
	return fmt.Sprintf("tile %d cannot slide into the blank", e.Tile)
}
