package game

// CellState is the disclosure state of a cell
type CellState int

const (
	Closed CellState = iota
	Open
	Flagged
)

var cellStateNames = []string{
	"closed",
	"open",
	"flagged",
}

func (s CellState) String() string {
	if s < Closed || s > Flagged {
		return ""
	}
	return cellStateNames[s]
}

// Content is what a cell holds: a mine, or the number of mines around it.
// It is fixed once the board has been generated.
type Content int8

// Mine marks a mine-bearing cell. Values 0-8 are empty cells.
const Mine Content = -1

// Empty returns the content of a non-mine cell with n adjacent mines
func Empty(n int) Content {
	return Content(n)
}

func (c Content) IsMine() bool {
	return c == Mine
}

// Adjacent is the number of neighbouring mines, or -1 for a mine
func (c Content) Adjacent() int {
	return int(c)
}

// Outcome represents how a game session stands
// inProgress -> still playing
// won -> every mine flagged, every other cell open
// lost -> a mine was opened
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "inProgress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return ""
}

// Code is the outcome as a number: 0 still playing, 1 lost, 2 won
func (o Outcome) Code() int {
	switch o {
	case Lost:
		return 1
	case Won:
		return 2
	}
	return 0
}

// Cell is one addressable position on the board
type Cell struct {
	State   CellState
	Content Content
}

func (c Cell) IsOpen() bool {
	return c.State == Open
}

func (c Cell) IsFlagged() bool {
	return c.State == Flagged
}

func (c Cell) IsMine() bool {
	return c.Content.IsMine()
}

// Pos is a board coordinate. X is the column, Y the row.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellInfo pairs a cell with its position, for ordered snapshots
type CellInfo struct {
	Pos  Pos
	Cell Cell
}
