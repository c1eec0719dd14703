package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/sweep/config"
	"github.com/minaorangina/sweep/game"
	"github.com/minaorangina/sweep/protocol"
)

const (
	presetPromptText   = "Choose a board size (%s) [%s]: "
	invalidPresetText  = "`%s` is not a valid board size. Defaulting to %s.\n"
	noPresetText       = "\nNo answer received. Defaulting to %s.\n"
	movePromptText     = "\nYour move (o x y to open, f x y to flag, b to show the board, q to quit): "
	retryMoveText      = "Invalid move. Try something like \"o 3 4\" or \"f 0 2\".\n"
	quitText           = "\nBye!\n"
	flagsRemainingText = "Flags remaining: %d    Opened: %d\n"
)

var (
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	numberStyles = []lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
)

func cellText(code int) string {
	c, ok := game.DecodeCell(code)
	if !ok {
		return "?"
	}

	switch c.State {
	case game.Closed:
		return closedStyle.Render("#")
	case game.Flagged:
		return flagStyle.Render("F")
	}

	if c.IsMine() {
		return mineStyle.Render("*")
	}

	n := c.Content.Adjacent()
	if n == 0 {
		return "."
	}
	return numberStyles[n].Render(strconv.Itoa(n))
}

func buildBoardDisplayText(msg protocol.OutboundMessage) string {
	var b strings.Builder

	b.WriteString("\n    ")
	for x := 0; x < msg.Width; x++ {
		fmt.Fprintf(&b, "%3d", x)
	}
	b.WriteString("\n")

	for y, row := range msg.Board {
		fmt.Fprintf(&b, "%3d ", y)
		for _, code := range row {
			b.WriteString("  " + cellText(code))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, flagsRemainingText, msg.FlagsRemaining, msg.FieldsOpened)

	if msg.Message != "" {
		b.WriteString(messageStyle.Render(msg.Message) + "\n")
	}
	if msg.Error != "" {
		b.WriteString("Error: " + msg.Error + "\n")
	}

	return b.String()
}

func presetPromptNames(presets config.Presets) string {
	return strings.Join(presets.Names(), ", ")
}
