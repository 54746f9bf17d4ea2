package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conundrumlabs/conundrum-server/internal/config"
	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
	"github.com/conundrumlabs/conundrum-server/internal/middleware"
	"github.com/conundrumlabs/conundrum-server/internal/repository"
)

type PuzzleHandler struct {
	logger  *slog.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	dec     *schema.Decoder
}

func NewPuzzleHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
) *PuzzleHandler {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &PuzzleHandler{
		logger:  logger,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		dec:     dec,
	}
}

func (h PuzzleHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	var params NewSessionParams
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	board, err := conundrum.FromSlice(params.State)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	// solving up front both vets the board and fixes the par score
	moves, err := conundrum.Resolve(board)
	if errors.Is(err, conundrum.ErrNoSolution) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to solve board", "board", board, "error", err)
		return
	}

	var createParams repository.CreatePuzzleSessionParams
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		h.logger.Debug("creating session for player", "username", claims.Username)
		createParams.PlayerId = &claims.PlayerId
	} else {
		h.logger.Debug("creating anonymous session")
	}

	session, err := h.repo.CreatePuzzleSession(
		r.Context(), board, len(moves), createParams,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create puzzle session", "error", err)
		return
	}

	h.sendSession(w, session)
}

func (h PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	h.sendSession(w, session)
}

func (h PuzzleHandler) Move(w http.ResponseWriter, r *http.Request) {
	var params MoveParams
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	if ended(session) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("session has ended")))
		return
	}

	updateParams, err := moveParams(session, conundrum.Tile(params.Tile))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	session, err = h.repo.UpdatePuzzleSession(
		r.Context(), session.PuzzleSessionId, updateParams,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update puzzle session", "error", err)
		return
	}

	h.sendSession(w, session)
}

func (h PuzzleHandler) Hint(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	if ended(session) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("session has ended")))
		return
	}

	hint, err := nextMove(session)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to compute hint", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, map[string]int{"hint": int(hint)})
}

func (h PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	if ended(session) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("session has ended")))
		return
	}

	moves, err := remainingMoves(session)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to solve session board", "error", err)
		return
	}

	// asking for the full answer takes the session off the leaderboard
	assisted := true
	if _, err = h.repo.UpdatePuzzleSession(
		r.Context(), session.PuzzleSessionId,
		repository.UpdatePuzzleSessionParams{Assisted: &assisted},
	); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to update puzzle session", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, map[string][]int{"solution": movesToInts(moves)})
}

func (h PuzzleHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	if ended(session) {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, h.logger, wrapError(fmt.Errorf("session has ended")))
		return
	}

	forfeited := true
	endedAt := time.Now().UTC()
	session, err := h.repo.UpdatePuzzleSession(
		r.Context(), session.PuzzleSessionId,
		repository.UpdatePuzzleSessionParams{
			Forfeited: &forfeited,
			EndedAt:   &endedAt,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to forfeit puzzle session", "error", err)
		return
	}

	h.sendSession(w, session)
}

func (h PuzzleHandler) Records(w http.ResponseWriter, r *http.Request) {
	var params RecordParams
	if err := h.dec.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.logger, wrapError(err))
		return
	}

	records, err := h.repo.GetRecords(
		r.Context(), repository.RecordFilter{Username: params.Username},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch records", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, records)
}

func (h PuzzleHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.PuzzleSession, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	session, err := h.repo.FetchPuzzleSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch session from db", "error", err)
		return nil, false
	}
	return session, true
}

func (h PuzzleHandler) sendSession(w http.ResponseWriter, session *repository.PuzzleSession) {
	dto, err := NewPuzzleSessionDTO(session)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("db returned invalid puzzle_session.current_id", "error", err)
		return
	}
	sendJSONOrLog(w, h.logger, dto)
}

func ended(s *repository.PuzzleSession) bool {
	return s.Solved || s.Forfeited
}

// moveParams turns one slide into a session update.
func moveParams(
	s *repository.PuzzleSession, tile conundrum.Tile,
) (repository.UpdatePuzzleSessionParams, error) {
	state, err := s.CurrentState()
	if err != nil {
		return repository.UpdatePuzzleSessionParams{}, err
	}
	next, err := state.Apply(tile)
	if err != nil {
		return repository.UpdatePuzzleSessionParams{}, err
	}

	currentId := next.ID()
	moveCount := s.MoveCount + 1
	params := repository.UpdatePuzzleSessionParams{
		CurrentId: &currentId,
		MoveCount: &moveCount,
	}
	if next.IsGoal() {
		solved := true
		endedAt := time.Now().UTC()
		params.Solved = &solved
		params.EndedAt = &endedAt
	}
	return params, nil
}

func nextMove(s *repository.PuzzleSession) (conundrum.Tile, error) {
	moves, err := remainingMoves(s)
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		return 0, fmt.Errorf("board is already solved")
	}
	return moves[0], nil
}

func remainingMoves(s *repository.PuzzleSession) ([]conundrum.Tile, error) {
	state, err := s.CurrentState()
	if err != nil {
		return nil, err
	}
	return conundrum.Resolve(state)
}
