package conundrum

import "log/slog"

var Log *slog.Logger = slog.Default()

// node is an entry in the per-call search arena. parent is an arena
// index, -1 for the root; the chain is only ever walked backwards
// during path reconstruction.
type node struct {
	state  State
	id     int
	parent int32
}

// Resolve returns the shortest sequence of tile values to slide into
// the blank, in order, to bring the board to [Goal]. The result is
// empty when the board already is the goal.
//
// Each call owns its queue and visited set, so independent calls are
// safe to run concurrently.
func Resolve(initial State) ([]Tile, error) {
	path, err := SolvePath(initial)
	if err != nil {
		return nil, err
	}
	return Moves(path), nil
}

// SolvePath returns the shortest state path from initial to [Goal],
// both ends included.
//
// The search is a plain breadth-first traversal of the implicit slide
// graph. The goal test happens on dequeue, not on generation: with a
// FIFO frontier and unit edge costs the first dequeue of the goal ends
// a shortest path, and testing there keeps the discovery order (and so
// the chosen path among equal-length ones) stable.
func SolvePath(initial State) ([]State, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	arena := make([]node, 1, 512)
	arena[0] = node{state: initial, id: initial.ID(), parent: -1}
	visited := make(map[int]int32, 512)
	visited[arena[0].id] = 0
	queue := make([]int32, 1, 512)
	queue[0] = 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if arena[cur].id == GoalID {
			return statePath(arena, cur), nil
		}
		for _, succ := range arena[cur].state.Successors() {
			id := succ.ID()
			if _, ok := visited[id]; ok {
				continue
			}
			next := int32(len(arena))
			arena = append(arena, node{state: succ, id: id, parent: cur})
			visited[id] = next
			queue = append(queue, next)
		}
	}

	Log.Debug("exhausted reachable component without finding goal",
		slog.String("initial", initial.String()),
		slog.Int("visited", len(visited)))
	return nil, ErrNoSolution
}

func statePath(arena []node, last int32) []State {
	path := []State{arena[last].state}
	for i := arena[last].parent; i >= 0; i = arena[i].parent {
		path = append(path, arena[i].state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Moves converts a state path into the emitted move sequence: for each
// consecutive pair the move is the tile that slid into the blank's new
// position, read from the earlier state.
func Moves(path []State) []Tile {
	if len(path) < 2 {
		return []Tile{}
	}
	moves := make([]Tile, len(path)-1)
	for i := range moves {
		from, to := path[i], path[i+1]
		moves[i] = from[to.BlankPosition()]
	}
	return moves
}
