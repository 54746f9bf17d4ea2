// Package conundrum solves the conundrum sliding-tile puzzle: seven
// numbered tiles and one blank on an eight-cell board with a fixed,
// irregular adjacency. Resolve finds the shortest move sequence to the
// goal arrangement by breadth-first search over the implicit graph of
// board states.
package conundrum
