package game

func clamp(v, lower, upper int) int {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

// neighbours returns the positions in the 3x3 block around p that lie on
// the board, excluding p itself. Edge and corner cells have fewer.
func (g *Game) neighbours(p Pos) []Pos {
	fromX, toX := clamp(p.X-1, 0, g.width-1), clamp(p.X+1, 0, g.width-1)
	fromY, toY := clamp(p.Y-1, 0, g.height-1), clamp(p.Y+1, 0, g.height-1)

	ns := make([]Pos, 0, 8)
	for x := fromX; x <= toX; x++ {
		for y := fromY; y <= toY; y++ {
			if x == p.X && y == p.Y {
				continue
			}
			ns = append(ns, Pos{X: x, Y: y})
		}
	}

	return ns
}

func (g *Game) countNeighbours(p Pos, match func(Cell) bool) int {
	count := 0
	for _, n := range g.neighbours(p) {
		if match(*g.cell(n)) {
			count++
		}
	}
	return count
}

func (g *Game) neighbouringMines(p Pos) int {
	return g.countNeighbours(p, Cell.IsMine)
}

func (g *Game) neighbouringFlags(p Pos) int {
	return g.countNeighbours(p, Cell.IsFlagged)
}

func (g *Game) count(match func(Cell) bool) int {
	count := 0
	for _, row := range g.cells {
		for _, c := range row {
			if match(c) {
				count++
			}
		}
	}
	return count
}

func (g *Game) inBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}
