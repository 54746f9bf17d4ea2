package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conundrumlabs/conundrum-server/internal/conundrum"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    command
		wantErr bool
	}{
		{input: "m 5", want: command{op: "m", tile: conundrum.Tile(5)}},
		{input: "  m 7\r", want: command{op: "m", tile: conundrum.Tile(7)}},
		{input: "h", want: command{op: "h"}},
		{input: "s", want: command{op: "s"}},
		{input: "f", want: command{op: "f"}},
		{input: "m", wantErr: true},
		{input: "m five", wantErr: true},
		{input: "h 1", wantErr: true},
		{input: "x", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseCommand(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}
