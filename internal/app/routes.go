package app

import (
	"net/http"

	"github.com/conundrumlabs/conundrum-server/internal/handlers"
)

func (a *App) loadRoutes() {
	puzzle := handlers.NewPuzzleHandler(a.logger, a.db, a.cookies, a.ws)
	auth := handlers.NewAuthHandler(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("POST /game", puzzle.NewSession)
	a.router.HandleFunc("GET /game/{id}", puzzle.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", puzzle.Move)
	a.router.HandleFunc("POST /game/{id}/hint", puzzle.Hint)
	a.router.HandleFunc("POST /game/{id}/solve", puzzle.Solve)
	a.router.HandleFunc("POST /game/{id}/forfeit", puzzle.Forfeit)
	a.router.HandleFunc("/game/{id}/connect", puzzle.ConnectWS)

	a.router.HandleFunc("GET /records", puzzle.Records)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
