package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
)

// PuzzleSession is one player's (or anonymous visitor's) attempt at a
// board. Boards are stored as their integer state ids; the codec in
// internal/conundrum is a bijection, so nothing else is needed.
type PuzzleSession struct {
	PuzzleSessionId int64
	PlayerId        *int64
	InitialId       int
	CurrentId       int
	MoveCount       int
	OptimalMoves    int
	Assisted        bool
	Solved          bool
	Forfeited       bool
	StartedAt       pgtype.Timestamptz
	EndedAt         pgtype.Timestamptz
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

func (s PuzzleSession) CurrentState() (conundrum.State, error) {
	return conundrum.FromID(s.CurrentId)
}

type CreatePuzzleSessionParams struct {
	PlayerId *int64
}

func (p CreatePuzzleSessionParams) UpdateArgs(args *pgx.NamedArgs) *pgx.NamedArgs {
	if p.PlayerId != nil {
		(*args)["player_id"] = *p.PlayerId
	}
	return args
}

func (q *Queries) CreatePuzzleSession(
	ctx context.Context,
	initial conundrum.State,
	optimalMoves int,
	params CreatePuzzleSessionParams,
) (*PuzzleSession, error) {
	args := pgx.NamedArgs{
		"initial_id":    initial.ID(),
		"current_id":    initial.ID(),
		"optimal_moves": optimalMoves,
		"solved":        initial.IsGoal(),
	}
	params.UpdateArgs(&args)

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle_session (
			player_id, initial_id, current_id, optimal_moves, solved
		)
		VALUES (
			@player_id, @initial_id, @current_id, @optimal_moves, @solved
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[PuzzleSession],
	)
}

func (q *Queries) FetchPuzzleSession(
	ctx context.Context, puzzleSessionId int64,
) (*PuzzleSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM puzzle_session WHERE puzzle_session_id = $1",
		puzzleSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[PuzzleSession])
}

type UpdatePuzzleSessionParams struct {
	CurrentId *int
	MoveCount *int
	Assisted  *bool
	Solved    *bool
	Forfeited *bool
	EndedAt   *time.Time
}

func (p UpdatePuzzleSessionParams) SetClause() (string, map[string]any) {
	parts := make([]string, 0)
	args := make(map[string]any)

	if p.CurrentId != nil {
		parts = append(parts, "current_id = @current_id")
		args["current_id"] = *p.CurrentId
	}
	if p.MoveCount != nil {
		parts = append(parts, "move_count = @move_count")
		args["move_count"] = *p.MoveCount
	}
	if p.Assisted != nil {
		parts = append(parts, "assisted = @assisted")
		args["assisted"] = *p.Assisted
	}
	if p.Solved != nil {
		parts = append(parts, "solved = @solved")
		args["solved"] = *p.Solved
	}
	if p.Forfeited != nil {
		parts = append(parts, "forfeited = @forfeited")
		args["forfeited"] = *p.Forfeited
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdatePuzzleSession(
	ctx context.Context, puzzleSessionId int64, params UpdatePuzzleSessionParams,
) (*PuzzleSession, error) {
	setClause, args := params.SetClause()
	args["puzzle_session_id"] = puzzleSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE puzzle_session SET "+setClause+
			" WHERE puzzle_session_id = @puzzle_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[PuzzleSession])
}
