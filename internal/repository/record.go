// custom query
package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type Record struct {
	PuzzleSessionId int64   `json:"puzzle_session_id"`
	Username        *string `json:"username"`
	OptimalMoves    int     `json:"optimal_moves"`
	MoveCount       int     `json:"move_count"`
	ExcessMoves     int     `json:"excess_moves"`
	PlaytimeMs      float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username *string
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords ranks finished sessions: unassisted solves first by how
// far over the optimum they landed, then by playtime.
func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		puzzle_session_id,
		username,
		optimal_moves,
		move_count,
		move_count - optimal_moves excess_moves,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM puzzle_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND assisted = false
		AND forfeited = false
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY excess_moves, playtime_ms;"

	rows, _ := q.db.Query(ctx, query, args)
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
