package game

import (
	"fmt"
	"math/rand"
)

// Board is the full game grid. Aggregate counters are maintained
// incrementally as cells change so callers never need to rescan the
// grid; the invariant tests verify they always match a full scan.
type Board struct {
	Width  int
	Height int
	Cells  [][]Cell

	MineCount        int // mines deployed so far
	RevealedCount    int // cells with IsRevealed set
	FlagCount        int // cells with IsFlagged set
	CorrectFlagCount int // flagged cells that are mines
}

// NewEmptyBoard returns a blank board with no mines deployed. Useful
// when the caller wants to place mines at known coordinates.
func NewEmptyBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("game: invalid board size %dx%d", width, height))
	}
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// NewBoard returns a board with mineCount mines deployed at random.
func NewBoard(width, height, mineCount int) *Board {
	b := NewEmptyBoard(width, height)
	b.DeployMines(mineCount)
	return b
}

// In reports whether (x, y) is a valid cell coordinate.
func (b *Board) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// mustIn guards the exported mutators. A coordinate out of range here
// means an upstream bounds check is missing, so fail loudly instead of
// tolerating it.
func (b *Board) mustIn(x, y int) {
	if !b.In(x, y) {
		panic(fmt.Sprintf("game: coordinate (%d,%d) outside %dx%d board", x, y, b.Width, b.Height))
	}
}

// CellAt returns a copy of the cell at (x, y).
func (b *Board) CellAt(x, y int) Cell {
	b.mustIn(x, y)
	return b.Cells[y][x]
}

// PlantMine hides a mine at (x, y) and bumps the neighbor counts of the
// surrounding cells. Planting on an existing mine is a no-op so the
// counters never double-count. Reports whether a mine was planted.
func (b *Board) PlantMine(x, y int) bool {
	b.mustIn(x, y)
	if b.Cells[y][x].IsMine {
		return false
	}
	b.Cells[y][x].IsMine = true
	b.MineCount++
	b.forEachNeighbor(x, y, func(nx, ny int) {
		b.Cells[ny][nx].NeighborCount++
	})
	return true
}

// DeployMines places exactly count mines at uniformly random cells,
// retrying on collision. It must run before the first reveal and never
// again. There is no safe-first-click guarantee: the first cell the
// player opens can be a mine.
func (b *Board) DeployMines(count int) {
	if count < 0 || count > b.Width*b.Height {
		panic(fmt.Sprintf("game: cannot deploy %d mines on a %dx%d board", count, b.Width, b.Height))
	}
	if b.RevealedCount > 0 {
		panic("game: mines deployed after first reveal")
	}
	planted := 0
	for planted < count {
		x := rand.Intn(b.Width)
		y := rand.Intn(b.Height)
		if b.PlantMine(x, y) {
			planted++
		}
	}
}

// Open reveals the cell at (x, y) as a direct player action and reports
// whether a mine was hit. A flag on the cell does not block the reveal;
// it is cleared first so the counters stay consistent. When the opened
// cell has no adjacent mines the reveal floods outward through the
// zero-neighbor region, stopping at numbered cells and never opening
// flagged ones. Opening an already revealed cell is a no-op.
func (b *Board) Open(x, y int) (hitMine bool) {
	b.mustIn(x, y)
	c := &b.Cells[y][x]
	if c.IsRevealed {
		return false
	}
	if c.IsFlagged {
		b.ToggleFlag(x, y)
	}
	if c.IsMine {
		b.Reveal(x, y)
		return true
	}
	b.floodReveal(x, y)
	return false
}

// floodReveal opens (x, y) and every cell reachable from it through
// zero-neighbor cells. Iterative so a large empty region cannot blow
// the stack.
func (b *Board) floodReveal(x, y int) {
	queue := [][2]int{{x, y}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cx, cy := p[0], p[1]
		c := &b.Cells[cy][cx]
		if c.IsRevealed || c.IsFlagged {
			continue
		}
		c.IsRevealed = true
		b.RevealedCount++
		if c.CoastIsClear() {
			b.forEachNeighbor(cx, cy, func(nx, ny int) {
				n := &b.Cells[ny][nx]
				if !n.IsRevealed && !n.IsFlagged {
					queue = append(queue, [2]int{nx, ny})
				}
			})
		}
	}
}

// Reveal opens the single cell at (x, y) without flood propagation.
// Idempotent. Used for the all-mines sweep when the game is lost.
func (b *Board) Reveal(x, y int) {
	b.mustIn(x, y)
	c := &b.Cells[y][x]
	if c.IsRevealed {
		return
	}
	c.IsRevealed = true
	b.RevealedCount++
}

// RevealAllMines opens every mine on the board. Called once when the
// player hits a mine.
func (b *Board) RevealAllMines() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cells[y][x].IsMine {
				b.Reveal(x, y)
			}
		}
	}
}

// ToggleFlag flips the flag on an unrevealed cell and reports whether
// anything changed. Flags cannot be placed on revealed cells.
func (b *Board) ToggleFlag(x, y int) bool {
	b.mustIn(x, y)
	c := &b.Cells[y][x]
	if c.IsRevealed {
		return false
	}
	if c.IsFlagged {
		c.IsFlagged = false
		b.FlagCount--
		if c.IsMine {
			b.CorrectFlagCount--
		}
	} else {
		c.IsFlagged = true
		b.FlagCount++
		if c.IsMine {
			b.CorrectFlagCount++
		}
	}
	return true
}

// CheckClear reports whether every non-mine cell has been revealed and
// no mine has been opened.
func (b *Board) CheckClear() bool {
	return b.RevealedCount+b.MineCount == b.Width*b.Height && !b.mineRevealed()
}

// mineRevealed distinguishes a cleared board from a lost one where the
// all-mines sweep also pushed RevealedCount to the total.
func (b *Board) mineRevealed() bool {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Cells[y][x]
			if c.IsMine && c.IsRevealed {
				return true
			}
		}
	}
	return false
}

// AllMinesFlagged reports whether every mine carries a flag and no flag
// sits on a safe cell.
func (b *Board) AllMinesFlagged() bool {
	return b.MineCount > 0 &&
		b.CorrectFlagCount == b.MineCount &&
		b.FlagCount == b.CorrectFlagCount
}

// RemainingCells returns the number of hidden cells left to reveal.
func (b *Board) RemainingCells() int {
	return b.Width*b.Height - b.RevealedCount
}

// RemainingMines returns the deployed mine count minus placed flags,
// the number shown on the status display. Can go negative when the
// player over-flags.
func (b *Board) RemainingMines() int {
	return b.MineCount - b.FlagCount
}

// forEachNeighbor calls fn for each of the up-to-8 in-bounds neighbors
// of (x, y).
func (b *Board) forEachNeighbor(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.In(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}
