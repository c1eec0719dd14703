package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/sweep/protocol"
)

var errBadMove = errors.New("could not understand move")

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// parseMove reads a typed move such as "o 3 4" (open column 3, row 4),
// "f 3 4" (flag it), "b" (show the board) or "q" (quit)
func parseMove(line string) (msg protocol.InboundMessage, quit bool, err error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return msg, false, errBadMove
	}

	switch fields[0] {
	case "q", "quit", "exit":
		return msg, true, nil
	case "b", "board":
		msg.Command = protocol.Board
		return msg, false, nil
	case "o", "open":
		msg.Command = protocol.Open
	case "f", "flag":
		msg.Command = protocol.Flag
	default:
		return msg, false, errBadMove
	}

	if len(fields) != 3 {
		return msg, false, errBadMove
	}

	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return msg, false, errBadMove
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return msg, false, errBadMove
	}

	msg.X, msg.Y = x, y
	return msg, false, nil
}
