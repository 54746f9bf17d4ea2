package conundrum

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestResolveGoal(t *testing.T) {
	t.Parallel()

	moves, err := Resolve(Goal())
	require.NoError(t, err)
	require.Empty(t, moves)

	// the goal must be recognized on the first dequeue
	path, err := SolvePath(Goal())
	require.NoError(t, err)
	require.Equal(t, []State{Goal()}, path)
}

func TestResolveOneMove(t *testing.T) {
	t.Parallel()

	moves, err := Resolve(State{1, 2, 3, 4, 5, 0, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []Tile{5}, moves)
}

func TestResolveRejectsInvalidState(t *testing.T) {
	t.Parallel()

	var invalid InvalidStateError
	_, err := Resolve(State{1, 1, 3, 4, 0, 5, 6, 7})
	require.ErrorAs(t, err, &invalid)
}

// scramble walks k random slides away from the goal.
func scramble(r *rand.Rand, k int) State {
	s := Goal()
	for range k {
		succs := s.Successors()
		s = succs[r.IntN(len(succs))]
	}
	return s
}

func TestResolvedMovesReachGoal(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		k := 1 + r.IntN(40)
		s := scramble(r, k)

		moves, err := Resolve(s)
		require.NoError(t, err)
		require.LessOrEqual(t, len(moves), k)

		for _, m := range moves {
			var err error
			s, err = s.Apply(m)
			require.NoError(t, err)
		}
		require.True(t, s.IsGoal(), "moves must end at the goal")
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()

	s := scramble(rand.New(rand.NewPCG(3, 4)), 30)

	want, err := Resolve(s)
	require.NoError(t, err)

	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			got, err := Resolve(s)
			if err != nil {
				return err
			}
			if !slices.Equal(got, want) {
				return fmt.Errorf("resolved %v, want %v", got, want)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// distancesFromGoal computes exact shortest distances over the whole
// component reachable from the goal. Slides are symmetric, so distance
// from the goal equals distance to it.
func distancesFromGoal() map[int]int {
	dist := map[int]int{GoalID: 0}
	queue := []State{Goal()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur.ID()]
		for _, succ := range cur.Successors() {
			if _, ok := dist[succ.ID()]; ok {
				continue
			}
			dist[succ.ID()] = d + 1
			queue = append(queue, succ)
		}
	}
	return dist
}

func TestResolveOptimality(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	dist := distancesFromGoal()

	ids := make([]int, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		id := ids[r.IntN(len(ids))]
		s, err := FromID(id)
		require.NoError(t, err)

		moves, err := Resolve(s)
		require.NoError(t, err)
		require.Len(t, moves, dist[id], "state %v", s)
	}
}
