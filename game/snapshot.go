package game

// Render code offsets. A code is offset + adjacent count for an empty
// cell, or offset + 9 for a mine, giving 30 distinct values (0-29).
const (
	closedOffset  = 0
	flaggedOffset = 10
	openOffset    = 20
	mineCode      = 9
)

// Code encodes the cell's state and content as a single render code:
// closed 0-9, flagged 10-19, open 20-29.
func (c Cell) Code() int {
	offset := closedOffset
	switch c.State {
	case Flagged:
		offset = flaggedOffset
	case Open:
		offset = openOffset
	}

	if c.IsMine() {
		return offset + mineCode
	}
	return offset + c.Content.Adjacent()
}

// DecodeCell is the inverse of Cell.Code
func DecodeCell(code int) (Cell, bool) {
	if code < 0 || code >= openOffset+10 {
		return Cell{}, false
	}

	var c Cell
	switch {
	case code >= openOffset:
		c.State = Open
	case code >= flaggedOffset:
		c.State = Flagged
	default:
		c.State = Closed
	}

	n := code % 10
	if n == mineCode {
		c.Content = Mine
	} else {
		c.Content = Empty(n)
	}

	return c, true
}

// BoardState lists every cell row by row, top to bottom, left to right
func (g *Game) BoardState() []CellInfo {
	state := make([]CellInfo, 0, g.width*g.height)
	for y, row := range g.cells {
		for x, c := range row {
			state = append(state, CellInfo{Pos: Pos{X: x, Y: y}, Cell: c})
		}
	}
	return state
}

// RenderCodes returns one row of render codes per board row
func (g *Game) RenderCodes() [][]int {
	rows := make([][]int, g.height)
	for y, row := range g.cells {
		rows[y] = make([]int, g.width)
		for x, c := range row {
			rows[y][x] = c.Code()
		}
	}
	return rows
}
