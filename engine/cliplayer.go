package engine

import (
	"bufio"
	"io"
	"strings"

	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/protocol"
)

// CLIPlayer plays a game from a terminal
type CLIPlayer struct {
	id  string
	in  *bufio.Scanner
	out io.Writer
}

// NewCLIPlayer constructs a CLIPlayer reading moves from in
func NewCLIPlayer(id string, in io.Reader, out io.Writer) *CLIPlayer {
	return &CLIPlayer{
		id:  id,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

// Send draws the board
func (p *CLIPlayer) Send(msg protocol.OutboundMessage) error {
	_, err := io.WriteString(p.out, buildBoardDisplayText(msg))
	return err
}

// ChoosePreset asks for a board size. Anything unrecognised falls back to
// the fallback preset.
func (p *CLIPlayer) ChoosePreset(presets config.Presets, fallback string) (string, config.Preset, error) {
	def, err := presets.Lookup(fallback)
	if err != nil {
		return "", config.Preset{}, err
	}

	SendText(p.out, presetPromptText, presetPromptNames(presets), fallback)

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", config.Preset{}, err
		}
		SendText(p.out, noPresetText, fallback)
		return fallback, def, nil
	}

	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return fallback, def, nil
	}

	preset, err := presets.Lookup(answer)
	if err != nil {
		SendText(p.out, invalidPresetText, answer, fallback)
		return fallback, def, nil
	}

	for _, name := range presets.Names() {
		if presets[name] == preset && strings.HasPrefix(name, strings.ToLower(answer)) {
			return name, preset, nil
		}
	}

	return answer, preset, nil
}

// Play reads moves until the game ends, the player quits or input runs out
func (p *CLIPlayer) Play(ge GameEngine) error {
	state := ge.State()
	if err := p.Send(state); err != nil {
		return err
	}
	if state.Command == protocol.GameOver {
		return nil
	}

	for {
		SendText(p.out, movePromptText)

		if !p.in.Scan() {
			return p.in.Err()
		}

		msg, quit, err := parseMove(p.in.Text())
		if quit {
			SendText(p.out, quitText)
			return nil
		}
		if err != nil {
			SendText(p.out, retryMoveText)
			continue
		}

		msg.PlayerID = p.id
		reply := ge.Receive(msg)
		if err := p.Send(reply); err != nil {
			return err
		}

		if reply.Command == protocol.GameOver {
			return nil
		}
	}
}
