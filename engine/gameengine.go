package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/sweep/game"
	"github.com/minaorangina/sweep/protocol"
	"github.com/sirupsen/logrus"
)

var ErrUnexpectedCommand = errors.New("unexpected command")

const (
	wonText  = "All mines found. You win!"
	lostText = "Boom! You opened a mine."
)

// GameEngine is one game session. It wraps a board with the rules the
// board itself doesn't know about: the first opened cell is never a mine,
// opening a mine loses, and a finished game ignores further moves.
type GameEngine interface {
	ID() string
	CreatorID() string
	Width() int
	Height() int
	Open(x, y int) error
	ToggleFlag(x, y int) error
	BoardSnapshot() [][]int
	FieldsOpened() int
	FlagsRemaining() int
	Outcome() game.Outcome
	State() protocol.OutboundMessage
	Receive(protocol.InboundMessage) protocol.OutboundMessage
}

type gameEngine struct {
	mu        sync.Mutex
	id        string
	creatorID string
	game      *game.Game
	log       logrus.FieldLogger
}

type GameEngineOpts struct {
	GameID    string
	CreatorID string
	Width     int
	Height    int
	Mines     int
	Source    game.Source
	Logger    logrus.FieldLogger
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	src := opts.Source
	if src == nil {
		var err error
		if src, err = game.NewRandomSource(); err != nil {
			return nil, err
		}
	}

	g, err := game.New(opts.Width, opts.Height, opts.Mines, src)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	ge := &gameEngine{
		id:        opts.GameID,
		creatorID: opts.CreatorID,
		game:      g,
		log:       log.WithField("game_id", opts.GameID),
	}

	ge.log.WithFields(logrus.Fields{
		"width":  opts.Width,
		"height": opts.Height,
		"mines":  opts.Mines,
	}).Info("game created")

	return ge, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) Width() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Width()
}

func (ge *gameEngine) Height() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Height()
}

// Open opens the cell at (x, y)
func (ge *gameEngine) Open(x, y int) error {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.open(game.Pos{X: x, Y: y})
}

// ToggleFlag flags or unflags the cell at (x, y). Open cells can't be flagged.
func (ge *gameEngine) ToggleFlag(x, y int) error {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.toggleFlag(game.Pos{X: x, Y: y})
}

func (ge *gameEngine) BoardSnapshot() [][]int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.RenderCodes()
}

func (ge *gameEngine) FieldsOpened() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.FieldsOpened()
}

func (ge *gameEngine) FlagsRemaining() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.FlagsRemaining()
}

func (ge *gameEngine) Outcome() game.Outcome {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.game.Outcome()
}

// State describes the board for a player
func (ge *gameEngine) State() protocol.OutboundMessage {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.state()
}

// Receive carries out a player's command and replies with the new state
func (ge *gameEngine) Receive(msg protocol.InboundMessage) protocol.OutboundMessage {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	pos := game.Pos{X: msg.X, Y: msg.Y}

	var err error
	switch msg.Command {
	case protocol.Open:
		err = ge.open(pos)
	case protocol.Flag:
		err = ge.toggleFlag(pos)
	case protocol.Board:
	default:
		err = fmt.Errorf("%w: %q", ErrUnexpectedCommand, msg.Command.String())
	}

	out := ge.state()
	out.PlayerID = msg.PlayerID
	if err != nil {
		ge.log.WithError(err).WithField("player_id", msg.PlayerID).Debug("command rejected")
		out.Command = protocol.Error
		out.Error = err.Error()
	}

	return out
}

func (ge *gameEngine) open(pos game.Pos) error {
	if ge.game.Outcome() != game.InProgress {
		return nil
	}

	hit, err := ge.game.Open(pos)
	if err != nil {
		return err
	}

	// the first cell opened in a game is never a mine
	for hit && ge.game.FieldsOpened() == 1 {
		ge.log.WithField("pos", pos).Debug("mine under first click, regenerating board")
		if err := ge.game.Reset(); err != nil {
			return err
		}
		if hit, err = ge.game.Open(pos); err != nil {
			return err
		}
	}

	if hit {
		ge.game.Lose()
		ge.game.RevealAll()
		ge.log.WithField("pos", pos).Info("game lost")
		return nil
	}

	ge.winCheck()
	return nil
}

func (ge *gameEngine) toggleFlag(pos game.Pos) error {
	if ge.game.Outcome() != game.InProgress {
		return nil
	}

	c, err := ge.game.CellAt(pos)
	if err != nil {
		return err
	}
	if c.IsOpen() {
		return nil
	}

	if err := ge.game.ToggleFlag(pos); err != nil {
		return err
	}

	ge.winCheck()
	return nil
}

func (ge *gameEngine) winCheck() {
	ge.game.WinCheck()
	if ge.game.Outcome() == game.Won {
		ge.log.Info("game won")
	}
}

func (ge *gameEngine) state() protocol.OutboundMessage {
	outcome := ge.game.Outcome()

	msg := protocol.OutboundMessage{
		GameID:         ge.id,
		Command:        protocol.Board,
		Width:          ge.game.Width(),
		Height:         ge.game.Height(),
		Board:          ge.game.RenderCodes(),
		FieldsOpened:   ge.game.FieldsOpened(),
		FlagsRemaining: ge.game.FlagsRemaining(),
		Outcome:        outcome.String(),
	}

	switch outcome {
	case game.Won:
		msg.Command = protocol.GameOver
		msg.Message = wonText
	case game.Lost:
		msg.Command = protocol.GameOver
		msg.Message = lostText
	}

	return msg
}
