package conundrum

import (
	"fmt"
	"strings"
)

// Tile is a value on the board: 1-7 for numbered tiles, 0 for the blank.
type Tile int8

const Blank Tile = 0

// Size is the number of cells on the board.
const Size = 8

// State is a board arrangement: one tile value per cell, in the fixed
// cell order of the adjacency table below.
type State [Size]Tile

// Goal is the single target arrangement.
func Goal() State {
	return State{1, 2, 3, 4, 0, 5, 6, 7}
}

// GoalID is Goal().ID().
const GoalID = 12_340_567

var pows = [Size]int{10_000_000, 1_000_000, 100_000, 10_000, 1_000, 100, 10, 1}

// ID encodes the state as a base-10 integer, most significant digit
// first. It is injective over permutations of {0..7} and is used as the
// visited-set key during search.
func (s State) ID() int {
	id := 0
	for i, t := range s {
		id += int(t) * pows[i]
	}
	return id
}

// FromID decodes a state id back into a board. Inverse of [State.ID]
// for any valid permutation.
func FromID(id int) (State, error) {
	var s State
	for i, p := range pows {
		s[i] = Tile(id / p % 10)
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// FromSlice builds a validated state from caller-supplied cell values.
func FromSlice(cells []int) (State, error) {
	if len(cells) != Size {
		return State{}, InvalidStateError{
			fmt.Sprintf("want %d cells, got %d", Size, len(cells)),
		}
	}
	var s State
	for i, c := range cells {
		if c < 0 || c >= Size { // check before the int8 conversion can wrap
			return State{}, InvalidStateError{
				fmt.Sprintf("cell %d holds %d, want 0-%d", i, c, Size-1),
			}
		}
		s[i] = Tile(c)
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// Validate reports whether the state is a permutation of {0..7}.
func (s State) Validate() error {
	var seen [Size]bool
	for i, t := range s {
		if t < 0 || t >= Size {
			return InvalidStateError{
				fmt.Sprintf("cell %d holds %d, want 0-%d", i, t, Size-1),
			}
		}
		if seen[t] {
			return InvalidStateError{fmt.Sprintf("duplicate value %d", t)}
		}
		seen[t] = true
	}
	return nil
}

// BlankPosition returns the index of the blank cell, or -1 when the
// state has no blank (which Validate rules out).
func (s State) BlankPosition() int {
	for i, t := range s {
		if t == Blank {
			return i
		}
	}
	return -1
}

/*
The board is not a grid. Cells 0, 4, 6 and 7 have two exits, every
other cell has three:

	0: 1 2      4: 3 5
	1: 0 2 3    5: 2 4 7
	2: 0 1 5    6: 3 7
	3: 1 4 6    7: 5 6
*/
var neighbors = [Size][]int{
	0: {1, 2},
	1: {0, 2, 3},
	2: {0, 1, 5},
	3: {1, 4, 6},
	4: {3, 5},
	5: {2, 4, 7},
	6: {3, 7},
	7: {5, 6},
}

// value receiver makes the copy
func (s State) swap(i, j int) State {
	s[i], s[j] = s[j], s[i]
	return s
}

// Successors returns every state reachable by one slide: one copy per
// neighbor of the blank, with the blank and that neighbor swapped.
func (s State) Successors() []State {
	bp := s.BlankPosition()
	adj := neighbors[bp]
	res := make([]State, len(adj))
	for i, n := range adj {
		res[i] = s.swap(bp, n)
	}
	return res
}

// Apply slides the named tile into the blank and returns the new state.
// The tile must sit on a cell adjacent to the blank.
func (s State) Apply(t Tile) (State, error) {
	if t <= 0 || t >= Size {
		return State{}, InvalidMoveError{t}
	}
	bp := s.BlankPosition()
	for _, n := range neighbors[bp] {
		if s[n] == t {
			return s.swap(bp, n), nil
		}
	}
	return State{}, InvalidMoveError{t}
}

// IsGoal reports whether the state is the target arrangement.
func (s State) IsGoal() bool {
	return s.ID() == GoalID
}

func (s State) String() string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		if t == Blank {
			b.WriteByte('_')
		} else {
			fmt.Fprintf(&b, "%d", t)
		}
	}
	return b.String()
}
