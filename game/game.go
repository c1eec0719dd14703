package game

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrOutOfBounds       = errors.New("position out of bounds")
)

// Game is a Minesweeper board and the outcome of the session played on it.
// It is not safe for concurrent use; callers serialise access.
type Game struct {
	width   int
	height  int
	cells   [][]Cell // indexed [y][x]
	outcome Outcome
	source  Source
}

// New constructs a width x height board with mines placed by src
func New(width, height, mines int, src Source) (*Game, error) {
	if err := validate(width, height, mines); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("game needs a random source")
	}

	g := &Game{
		width:  width,
		height: height,
		source: src,
	}

	if err := g.generate(mines); err != nil {
		return nil, err
	}

	return g, nil
}

func validate(width, height, mines int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: cannot create a %dx%d board", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: a %dx%d board has too many cells", ErrInvalidDimensions, width, height)
	}
	if mines < 0 {
		return fmt.Errorf("%w: cannot place %d mines", ErrInvalidMineCount, mines)
	}
	if mines >= width*height {
		return fmt.Errorf("%w: %d mines leave no free cell on a %dx%d board", ErrInvalidMineCount, mines, width, height)
	}
	return nil
}

// generate clears the board, places mines and computes adjacency counts
func (g *Game) generate(mines int) error {
	positions, err := SamplePositions(g.source, g.width, g.height, mines)
	if err != nil {
		return err
	}

	g.cells = make([][]Cell, g.height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, g.width)
	}

	for _, p := range positions {
		g.cell(p).Content = Mine
	}

	for y, row := range g.cells {
		for x := range row {
			p := Pos{X: x, Y: y}
			if c := g.cell(p); !c.IsMine() {
				c.Content = Empty(g.neighbouringMines(p))
			}
		}
	}

	g.outcome = InProgress

	return nil
}

// Reset regenerates the board with the same dimensions and mine count
func (g *Game) Reset() error {
	mines := g.MineCount()
	if err := validate(g.width, g.height, mines); err != nil {
		return err
	}

	return g.generate(mines)
}

// Open discloses the cell at p and reports whether a mine was hit.
//
// Opening an already open cell is a chord: when the number of flagged
// neighbours matches its count, every neighbour that is neither flagged
// nor open is opened too. Opening a cell with no adjacent mines floods
// out to its neighbours. Opening a flagged cell opens it.
func (g *Game) Open(p Pos) (bool, error) {
	if err := g.checkBounds(p); err != nil {
		return false, err
	}

	if g.cell(p).IsOpen() {
		return g.chord(p), nil
	}

	return g.reveal(p), nil
}

// reveal opens start and floods through zero-count cells.
// Each cell is opened at most once.
func (g *Game) reveal(start Pos) bool {
	pending := []Pos{start}

	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		c := g.cell(p)
		if c.IsOpen() {
			continue
		}
		c.State = Open

		if c.IsMine() {
			return true
		}

		if c.Content.Adjacent() == 0 {
			for _, n := range g.neighbours(p) {
				if !g.cell(n).IsOpen() {
					pending = append(pending, n)
				}
			}
		}
	}

	return false
}

// chord stops at the first neighbour that turns out to be a mine; cells
// already opened stay open
func (g *Game) chord(p Pos) bool {
	if g.neighbouringMines(p) != g.neighbouringFlags(p) {
		return false
	}

	for _, n := range g.neighbours(p) {
		c := g.cell(n)
		if c.IsFlagged() || c.IsOpen() {
			continue
		}
		if g.reveal(n) {
			return true
		}
	}

	return false
}

// ToggleFlag flags a cell, or clears the flag if it has one
func (g *Game) ToggleFlag(p Pos) error {
	if err := g.checkBounds(p); err != nil {
		return err
	}

	c := g.cell(p)
	if c.IsFlagged() {
		c.State = Closed
	} else {
		c.State = Flagged
	}

	return nil
}

// WinCheck marks the game won once every mine is flagged and every other
// cell is open. A lost game stays lost.
func (g *Game) WinCheck() {
	if g.outcome == Lost {
		return
	}

	if g.FlagsRemaining() == 0 && g.FieldsOpened()+g.fieldsFlagged() == g.width*g.height {
		g.outcome = Won
	}
}

// Lose ends the game as lost
func (g *Game) Lose() {
	if g.outcome == Won {
		return
	}
	g.outcome = Lost
}

// RevealAll opens every cell that is not open yet
func (g *Game) RevealAll() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].State = Open
		}
	}
}

func (g *Game) Width() int {
	return g.width
}

func (g *Game) Height() int {
	return g.height
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// MineCount is counted from the board itself
func (g *Game) MineCount() int {
	return g.count(Cell.IsMine)
}

func (g *Game) FieldsOpened() int {
	return g.count(Cell.IsOpen)
}

func (g *Game) fieldsFlagged() int {
	return g.count(Cell.IsFlagged)
}

// FlagsRemaining is the number of mines minus the number of flags.
// It goes negative when more flags than mines have been placed.
func (g *Game) FlagsRemaining() int {
	return g.MineCount() - g.fieldsFlagged()
}

// CellAt returns a copy of the cell at p
func (g *Game) CellAt(p Pos) (Cell, error) {
	if err := g.checkBounds(p); err != nil {
		return Cell{}, err
	}
	return *g.cell(p), nil
}

func (g *Game) cell(p Pos) *Cell {
	return &g.cells[p.Y][p.X]
}

func (g *Game) checkBounds(p Pos) error {
	if !g.inBounds(p) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfBounds, p.X, p.Y, g.width, g.height)
	}
	return nil
}
