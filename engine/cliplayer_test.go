package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/game"
	"github.com/minaorangina/sweep/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tt := []struct {
		input string
		want  protocol.InboundMessage
		quit  bool
	}{
		{"o 3 4", protocol.InboundMessage{Command: protocol.Open, X: 3, Y: 4}, false},
		{"OPEN 0 2", protocol.InboundMessage{Command: protocol.Open, X: 0, Y: 2}, false},
		{"  f 1 1 ", protocol.InboundMessage{Command: protocol.Flag, X: 1, Y: 1}, false},
		{"b", protocol.InboundMessage{Command: protocol.Board}, false},
		{"q", protocol.InboundMessage{}, true},
		{"quit", protocol.InboundMessage{}, true},
	}

	for _, tc := range tt {
		got, quit, err := parseMove(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
		assert.Equal(t, tc.quit, quit, tc.input)
	}

	for _, bad := range []string{"", "o", "o 1", "o a b", "x 1 1", "f 1 2 3"} {
		_, _, err := parseMove(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildBoardDisplayText(t *testing.T) {
	msg := protocol.OutboundMessage{
		Width:          3,
		Height:         2,
		Board:          [][]int{{0, 10, 20}, {22, 29, 9}},
		FieldsOpened:   3,
		FlagsRemaining: -1,
		Message:        "hello",
	}

	text := buildBoardDisplayText(msg)

	for _, want := range []string{"#", "F", ".", "2", "*", "Flags remaining: -1", "Opened: 3", "hello"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "Error")

	msg.Error = "nope"
	assert.Contains(t, buildBoardDisplayText(msg), "Error: nope")
}

func TestCLIPlayerPlay(t *testing.T) {
	t.Run("plays until the game is won", func(t *testing.T) {
		ge := newTestEngine(t, 3, 3, 1, 2, 2)
		in := strings.NewReader("nonsense\no 0 0\nf 2 2\no 1 1\n")
		out := &bytes.Buffer{}

		p := NewCLIPlayer("player-1", in, out)
		require.NoError(t, p.Play(ge))

		assert.Equal(t, game.Won, ge.Outcome())
		assert.Contains(t, out.String(), "Invalid move")
		assert.Contains(t, out.String(), wonText)
	})

	t.Run("stops on a loss", func(t *testing.T) {
		ge := newTestEngine(t, 3, 3, 2, 0, 0, 2, 0)
		in := strings.NewReader("o 0 2\no 0 0\nf 1 0\n")
		out := &bytes.Buffer{}

		require.NoError(t, NewCLIPlayer("player-1", in, out).Play(ge))

		assert.Equal(t, game.Lost, ge.Outcome())
		assert.Contains(t, out.String(), lostText)
		assert.Equal(t, 2, ge.FlagsRemaining(), "moves after the loss are never read")
	})

	t.Run("quits", func(t *testing.T) {
		ge := newTestEngine(t, 3, 3, 1, 2, 2)
		out := &bytes.Buffer{}

		require.NoError(t, NewCLIPlayer("player-1", strings.NewReader("q\no 0 0\n"), out).Play(ge))

		assert.Equal(t, 0, ge.FieldsOpened())
		assert.Contains(t, out.String(), "Bye!")
	})

	t.Run("stops at the end of input", func(t *testing.T) {
		ge := newTestEngine(t, 3, 3, 1, 2, 2)

		err := NewCLIPlayer("player-1", strings.NewReader("f 0 0"), &bytes.Buffer{}).Play(ge)

		assert.NoError(t, err)
		assert.Equal(t, 0, ge.FlagsRemaining())
		assert.Equal(t, game.InProgress, ge.Outcome())
	})

	t.Run("reports errors from the engine", func(t *testing.T) {
		ge := newTestEngine(t, 3, 3, 1, 2, 2)
		out := &bytes.Buffer{}

		require.NoError(t, NewCLIPlayer("player-1", strings.NewReader("o 9 9\n"), out).Play(ge))

		assert.Contains(t, out.String(), "Error: "+game.ErrOutOfBounds.Error())
	})
}

func TestCLIPlayerChoosePreset(t *testing.T) {
	presets, err := config.LoadPresets("")
	require.NoError(t, err)

	tt := []struct {
		name     string
		input    string
		wantName string
		wantText string
	}{
		{"by name", "large\n", "large", ""},
		{"by letter", "S\n", "small", ""},
		{"blank answer", "\n", "medium", ""},
		{"unknown answer", "enormous\n", "medium", "`enormous` is not a valid board size"},
		{"no answer", "", "medium", "No answer received"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewCLIPlayer("player-1", strings.NewReader(tc.input), out)

			name, preset, err := p.ChoosePreset(presets, config.DefaultPreset)
			require.NoError(t, err)

			assert.Equal(t, tc.wantName, name)
			assert.Equal(t, presets[tc.wantName], preset)
			assert.Contains(t, out.String(), "large, medium, small")
			assert.Contains(t, out.String(), tc.wantText)
		})
	}

	t.Run("fails when the fallback is missing", func(t *testing.T) {
		p := NewCLIPlayer("player-1", strings.NewReader("small\n"), &bytes.Buffer{})
		_, _, err := p.ChoosePreset(presets, "colossal")
		assert.ErrorIs(t, err, config.ErrUnknownPreset)
	})
}
