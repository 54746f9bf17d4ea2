package conundrum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateID(t *testing.T) {
	t.Parallel()

	require.Equal(t, GoalID, Goal().ID())
	require.Equal(t, 1234567, State{0, 1, 2, 3, 4, 5, 6, 7}.ID())
	require.Equal(t, 76543210, State{7, 6, 5, 4, 3, 2, 1, 0}.ID())
}

func TestFromIDRoundTrip(t *testing.T) {
	t.Parallel()

	states := []State{
		Goal(),
		{0, 1, 2, 3, 4, 5, 6, 7},
		{7, 6, 5, 4, 3, 2, 1, 0},
		{1, 2, 3, 4, 5, 0, 6, 7},
	}
	for _, want := range states {
		got, err := FromID(want.ID())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := FromID(11234567) // duplicate digit
	require.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	t.Parallel()

	s, err := FromSlice([]int{1, 2, 3, 4, 0, 5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, Goal(), s)

	var invalid InvalidStateError

	_, err = FromSlice([]int{1, 2, 3})
	require.ErrorAs(t, err, &invalid)

	_, err = FromSlice([]int{1, 1, 3, 4, 0, 5, 6, 7})
	require.ErrorAs(t, err, &invalid)

	_, err = FromSlice([]int{1, 2, 3, 4, 8, 5, 6, 7})
	require.ErrorAs(t, err, &invalid)
}

func TestBlankPosition(t *testing.T) {
	t.Parallel()

	require.Equal(t, 4, Goal().BlankPosition())
	require.Equal(t, 0, State{0, 1, 2, 3, 4, 5, 6, 7}.BlankPosition())
	require.Equal(t, 7, State{7, 6, 5, 4, 3, 2, 1, 0}.BlankPosition())
}

func TestAdjacencyShape(t *testing.T) {
	t.Parallel()

	degrees := map[int]int{0: 2, 1: 3, 2: 3, 3: 3, 4: 2, 5: 3, 6: 2, 7: 2}
	for cell, adj := range neighbors {
		require.Len(t, adj, degrees[cell], "cell %d", cell)
		for _, n := range adj {
			require.Contains(t, neighbors[n], cell,
				"edge %d-%d must be undirected", cell, n)
		}
	}
}

func TestSuccessors(t *testing.T) {
	t.Parallel()

	// blank at cell 4 slides with cells 3 and 5
	succs := Goal().Successors()
	require.Equal(t, []State{
		{1, 2, 3, 0, 4, 5, 6, 7},
		{1, 2, 3, 4, 5, 0, 6, 7},
	}, succs)

	// expansion must not mutate its input
	s := Goal()
	s.Successors()
	require.Equal(t, Goal(), s)
}

func TestApply(t *testing.T) {
	t.Parallel()

	s, err := Goal().Apply(4)
	require.NoError(t, err)
	require.Equal(t, State{1, 2, 3, 0, 4, 5, 6, 7}, s)

	var invalid InvalidMoveError

	_, err = Goal().Apply(1) // tile 1 is not beside the blank
	require.ErrorAs(t, err, &invalid)

	_, err = Goal().Apply(Blank)
	require.ErrorAs(t, err, &invalid)

	_, err = Goal().Apply(9)
	require.ErrorAs(t, err, &invalid)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 2 3 4 _ 5 6 7", Goal().String())
}
