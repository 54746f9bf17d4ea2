// Command conundrum solves a board from the command line:
//
//	conundrum 1 2 0 4 5 3 6 7
//
// prints the tiles to slide into the blank, in order.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
)

var (
	log = logrus.New()

	logPath string
	verbose bool
)

func init() {
	flag.StringVar(&logPath, "log", "", "also log to this file (rotated)")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

func setupLogging() {
	logLevel := logrus.WarnLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create file log hook: ", err)
	}
	log.AddHook(hook)
}

func parseBoard(args []string) (conundrum.State, error) {
	cells := make([]int, 0, conundrum.Size)
	for _, arg := range args {
		c, err := strconv.Atoi(arg)
		if err != nil {
			return conundrum.State{}, fmt.Errorf("cell %q is not an int", arg)
		}
		cells = append(cells, c)
	}
	return conundrum.FromSlice(cells)
}

func main() {
	flag.Parse()
	setupLogging()

	args := flag.Args()
	if len(args) != conundrum.Size {
		fmt.Fprintf(os.Stderr,
			"usage: %s [-v] [-log FILE] CELL0 ... CELL%d\n",
			os.Args[0], conundrum.Size-1,
		)
		os.Exit(2)
	}

	board, err := parseBoard(args)
	if err != nil {
		log.Fatal("bad board: ", err)
	}

	log.Debug("solving ", board)

	moves, err := conundrum.Resolve(board)
	if err != nil {
		log.Fatal("cannot solve: ", err)
	}

	log.Debugf("solved in %d moves", len(moves))

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(int(m))
	}
	fmt.Println(strings.Join(parts, " "))
}
