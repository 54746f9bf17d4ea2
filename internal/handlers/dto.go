package handlers

import (
	"time"

	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
	"github.com/conundrumlabs/conundrum-server/internal/repository"
)

type PuzzleSessionDTO struct {
	SessionId    int64      `json:"session_id"`
	Board        []int      `json:"board"`
	MoveCount    int        `json:"move_count"`
	OptimalMoves int        `json:"optimal_moves"`
	Assisted     bool       `json:"assisted"`
	Solved       bool       `json:"solved"`
	Forfeited    bool       `json:"forfeited"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
}

func NewPuzzleSessionDTO(s *repository.PuzzleSession) (*PuzzleSessionDTO, error) {
	state, err := conundrum.FromID(s.CurrentId)
	if err != nil {
		return nil, err
	}
	board := make([]int, conundrum.Size)
	for i, t := range state {
		board[i] = int(t)
	}
	dto := &PuzzleSessionDTO{
		SessionId:    s.PuzzleSessionId,
		Board:        board,
		MoveCount:    s.MoveCount,
		OptimalMoves: s.OptimalMoves,
		Assisted:     s.Assisted,
		Solved:       s.Solved,
		Forfeited:    s.Forfeited,
		StartedAt:    s.StartedAt.Time,
	}
	if s.EndedAt.Valid {
		endedAt := s.EndedAt.Time
		dto.EndedAt = &endedAt
	}
	return dto, nil
}

type NewSessionParams struct {
	State []int `schema:"state,required"`
}

type MoveParams struct {
	Tile int `schema:"tile,required"`
}

type RecordParams struct {
	Username *string `schema:"username"`
}

func movesToInts(moves []conundrum.Tile) []int {
	res := make([]int, len(moves))
	for i, m := range moves {
		res[i] = int(m)
	}
	return res
}
