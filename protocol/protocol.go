package protocol

import (
	"fmt"
	"strings"
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// player -> engine
	Open
	Flag
	Board
	// engine -> player
	Error
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:     "null",
	Open:     "open",
	Flag:     "flag",
	Board:    "board",
	Error:    "error",
	GameOver: "gameOver",
}

var NameToCmd = map[string]Cmd{
	"null":     Null,
	"open":     Open,
	"flag":     Flag,
	"board":    Board,
	"error":    Error,
	"gameover": GameOver,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalText sends commands over the wire by name
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(name), nil
}

// UnmarshalText accepts command names in any case
func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown command %q", string(text))
	}
	*c = cmd
	return nil
}
