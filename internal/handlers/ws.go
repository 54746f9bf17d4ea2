package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/conundrumlabs/conundrum-server/internal/repository"
)

type wsReply struct {
	Session  *PuzzleSessionDTO `json:"session,omitempty"`
	Hint     *int              `json:"hint,omitempty"`
	Solution []int             `json:"solution,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ConnectWS runs an interactive session: the client sends batches of
// newline-separated commands ("m <tile>", "h", "s", "f") and gets the
// session state back after every batch. State changes are persisted
// between messages, so a dropped connection loses nothing.
func (h PuzzleHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		reply := wsReply{}
		for _, line := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			cmd, err := parseCommand(line)
			if err != nil {
				reply.Error = err.Error()
				break
			}
			session, reply, err = h.executeCommand(r, session, cmd, reply)
			if err != nil {
				h.logger.Error("ws command failed", "op", cmd.op, "error", err)
				reply.Error = err.Error()
				break
			}
			if ended(session) {
				break
			}
		}

		dto, err := NewPuzzleSessionDTO(session)
		if err != nil {
			h.logger.Error("db returned invalid puzzle_session.current_id", "error", err)
			break
		}
		reply.Session = dto

		if err := c.WriteJSON(reply); err != nil {
			h.logger.Error("ws write failed", "error", err)
			break
		}
	}
}

func (h PuzzleHandler) executeCommand(
	r *http.Request,
	session *repository.PuzzleSession,
	cmd command,
	reply wsReply,
) (*repository.PuzzleSession, wsReply, error) {
	if ended(session) && cmd.op != "h" && cmd.op != "s" {
		return session, reply, nil
	}

	switch cmd.op {
	case "m":
		params, err := moveParams(session, cmd.tile)
		if err != nil {
			return session, reply, err
		}
		updated, err := h.repo.UpdatePuzzleSession(
			r.Context(), session.PuzzleSessionId, params,
		)
		if err != nil {
			return session, reply, err
		}
		return updated, reply, nil

	case "h":
		hint, err := nextMove(session)
		if err != nil {
			return session, reply, err
		}
		hintInt := int(hint)
		reply.Hint = &hintInt
		return session, reply, nil

	case "s":
		moves, err := remainingMoves(session)
		if err != nil {
			return session, reply, err
		}
		assisted := true
		updated, err := h.repo.UpdatePuzzleSession(
			r.Context(), session.PuzzleSessionId,
			repository.UpdatePuzzleSessionParams{Assisted: &assisted},
		)
		if err != nil {
			return session, reply, err
		}
		reply.Solution = movesToInts(moves)
		return updated, reply, nil

	case "f":
		forfeited := true
		endedAt := time.Now().UTC()
		updated, err := h.repo.UpdatePuzzleSession(
			r.Context(), session.PuzzleSessionId,
			repository.UpdatePuzzleSessionParams{
				Forfeited: &forfeited,
				EndedAt:   &endedAt,
			},
		)
		if err != nil {
			return session, reply, err
		}
		return updated, reply, nil
	}

	return session, reply, nil
}
