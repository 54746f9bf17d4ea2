package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"m": 1, // move <tile>
	"h": 0, // hint
	"s": 0, // solve
	"f": 0, // forfeit
}

type command struct {
	op   string
	tile conundrum.Tile
}

func parseCommand(c string) (command, error) {
	parts := strings.Split(strings.TrimSpace(c), " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return command{}, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return command{}, errors.New("invalid number of arguments")
	}
	cmd := command{op: parts[0]}
	if nargs == 1 {
		tile, err := strconv.Atoi(parts[1])
		if err != nil {
			return command{}, errors.New("argument must be an int")
		}
		cmd.tile = conundrum.Tile(tile)
	}
	return cmd, nil
}
