package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCountersMatchScan checks the incrementally maintained counters
// against a full grid scan.
func assertCountersMatchScan(t *testing.T, b *Board) {
	t.Helper()
	var mines, revealed, flags, correct int
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Cells[y][x]
			if c.IsMine {
				mines++
			}
			if c.IsRevealed {
				revealed++
			}
			if c.IsFlagged {
				flags++
				if c.IsMine {
					correct++
				}
			}
		}
	}
	assert.Equal(t, mines, b.MineCount, "MineCount vs scan")
	assert.Equal(t, revealed, b.RevealedCount, "RevealedCount vs scan")
	assert.Equal(t, flags, b.FlagCount, "FlagCount vs scan")
	assert.Equal(t, correct, b.CorrectFlagCount, "CorrectFlagCount vs scan")
}

// countNeighborMines recomputes a cell's neighbor count the slow way.
func countNeighborMines(b *Board, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.In(nx, ny) && b.Cells[ny][nx].IsMine {
				count++
			}
		}
	}
	return count
}

func TestDeployMinesExactCount(t *testing.T) {
	cases := []struct {
		w, h, mines int
	}{
		{9, 9, 10},
		{16, 16, 40},
		{30, 20, 99},
		{3, 2, 5},
		{2, 2, 4}, // every cell a mine
		{5, 5, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d_%d", tc.w, tc.h, tc.mines), func(t *testing.T) {
			b := NewBoard(tc.w, tc.h, tc.mines)
			assert.Equal(t, tc.mines, b.MineCount)
			assertCountersMatchScan(t, b)
		})
	}
}

func TestNeighborCountsMatchScan(t *testing.T) {
	// Dense boards make collisions during deployment likely, which is
	// exactly the retry path that must not double-count.
	for _, mines := range []int{1, 10, 40, 80} {
		b := NewBoard(10, 9, mines)
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				assert.Equal(t, countNeighborMines(b, x, y), b.Cells[y][x].NeighborCount,
					"neighbor count at (%d,%d) with %d mines", x, y, mines)
			}
		}
	}
}

func TestPlantMineTwiceIsNoOp(t *testing.T) {
	b := NewEmptyBoard(3, 3)
	require.True(t, b.PlantMine(1, 1))
	require.False(t, b.PlantMine(1, 1))

	assert.Equal(t, 1, b.MineCount)
	assert.Equal(t, 1, b.Cells[0][0].NeighborCount, "double plant must not bump neighbors twice")
}

func TestOpenFloodsZeroNeighborRegion(t *testing.T) {
	// No mines at all: one click opens the whole board.
	b := NewEmptyBoard(4, 3)
	hit := b.Open(0, 0)

	assert.False(t, hit)
	assert.Equal(t, 12, b.RevealedCount)
	assertCountersMatchScan(t, b)
}

func TestOpenStopsAtNumbers(t *testing.T) {
	// 3x1 row with a mine on the right: opening the left end reveals
	// the zero cell and the bordering number, not the mine.
	b := NewEmptyBoard(3, 1)
	b.PlantMine(2, 0)

	hit := b.Open(0, 0)

	assert.False(t, hit)
	assert.True(t, b.Cells[0][0].IsRevealed)
	assert.True(t, b.Cells[0][1].IsRevealed)
	assert.False(t, b.Cells[0][2].IsRevealed)
	assert.Equal(t, 2, b.RevealedCount)
}

func TestOpenIsIdempotent(t *testing.T) {
	b := NewEmptyBoard(3, 1)
	b.PlantMine(2, 0)
	b.Open(1, 0)
	require.Equal(t, 1, b.RevealedCount)

	hit := b.Open(1, 0)

	assert.False(t, hit)
	assert.Equal(t, 1, b.RevealedCount, "re-opening must not move the counter")
}

func TestOpenMine(t *testing.T) {
	b := NewEmptyBoard(3, 1)
	b.PlantMine(2, 0)

	hit := b.Open(2, 0)

	assert.True(t, hit)
	assert.True(t, b.Cells[0][2].IsRevealed)
	assertCountersMatchScan(t, b)
}

func TestOpenFlaggedCellClearsFlagFirst(t *testing.T) {
	// Flags do not block a direct reveal; the flag comes off so the
	// counters stay consistent.
	b := NewEmptyBoard(3, 1)
	b.PlantMine(2, 0)
	b.ToggleFlag(1, 0)

	hit := b.Open(1, 0)

	assert.False(t, hit)
	assert.True(t, b.Cells[0][1].IsRevealed)
	assert.False(t, b.Cells[0][1].IsFlagged)
	assert.Equal(t, 0, b.FlagCount)
	assertCountersMatchScan(t, b)
}

func TestFloodDoesNotOpenFlaggedCells(t *testing.T) {
	b := NewEmptyBoard(4, 1)
	b.PlantMine(3, 0)
	b.ToggleFlag(1, 0)

	b.Open(0, 0)

	assert.True(t, b.Cells[0][0].IsRevealed)
	assert.False(t, b.Cells[0][1].IsRevealed, "flood must not open a flagged cell")
	assert.True(t, b.Cells[0][1].IsFlagged)
}

func TestToggleFlagTwiceRestores(t *testing.T) {
	b := NewEmptyBoard(3, 3)
	b.PlantMine(0, 0)

	require.True(t, b.ToggleFlag(0, 0))
	assert.Equal(t, 1, b.FlagCount)
	assert.Equal(t, 1, b.CorrectFlagCount)

	require.True(t, b.ToggleFlag(0, 0))
	assert.Equal(t, 0, b.FlagCount)
	assert.Equal(t, 0, b.CorrectFlagCount)
	assert.False(t, b.Cells[0][0].IsFlagged)
	assertCountersMatchScan(t, b)
}

func TestToggleFlagOnRevealedCell(t *testing.T) {
	b := NewEmptyBoard(3, 1)
	b.PlantMine(2, 0)
	b.Open(1, 0)

	assert.False(t, b.ToggleFlag(1, 0))
	assert.Equal(t, 0, b.FlagCount)
}

func TestRevealAllMines(t *testing.T) {
	b := NewEmptyBoard(4, 4)
	b.PlantMine(0, 0)
	b.PlantMine(3, 3)

	b.RevealAllMines()

	assert.True(t, b.Cells[0][0].IsRevealed)
	assert.True(t, b.Cells[3][3].IsRevealed)
	assert.Equal(t, 2, b.RevealedCount)
	assertCountersMatchScan(t, b)
}

func TestCheckClear(t *testing.T) {
	b := NewEmptyBoard(3, 2)
	b.PlantMine(0, 0)

	assert.False(t, b.CheckClear())
	b.Open(2, 0)
	b.Open(1, 0)
	b.Open(0, 1)
	b.Open(1, 1)
	b.Open(2, 1)
	assert.True(t, b.CheckClear())
}

func TestCheckClearFalseWithMineRevealed(t *testing.T) {
	// A revealed mine never counts toward a clear, even when the
	// reveal counter alone would add up.
	b := NewEmptyBoard(3, 1)
	b.PlantMine(0, 0)
	b.Open(0, 0)
	b.Open(1, 0)

	assert.Equal(t, 2, b.RevealedCount)
	assert.False(t, b.CheckClear())

	b.RevealAllMines()
	assert.False(t, b.CheckClear())
}

func TestAllMinesFlagged(t *testing.T) {
	b := NewEmptyBoard(3, 1)
	b.PlantMine(0, 0)
	b.PlantMine(2, 0)

	b.ToggleFlag(0, 0)
	assert.False(t, b.AllMinesFlagged())

	b.ToggleFlag(1, 0) // wrong flag blocks the condition
	b.ToggleFlag(2, 0)
	assert.False(t, b.AllMinesFlagged())

	b.ToggleFlag(1, 0)
	assert.True(t, b.AllMinesFlagged())
}

func TestOutOfBoundsCoordinatesPanic(t *testing.T) {
	b := NewEmptyBoard(3, 3)
	assert.Panics(t, func() { b.PlantMine(-1, 0) })
	assert.Panics(t, func() { b.Open(3, 0) })
	assert.Panics(t, func() { b.Reveal(0, 3) })
	assert.Panics(t, func() { b.ToggleFlag(0, -1) })
	assert.Panics(t, func() { b.CellAt(99, 99) })
}

func TestDeployMinesRejectsBadCounts(t *testing.T) {
	b := NewEmptyBoard(3, 3)
	assert.Panics(t, func() { b.DeployMines(10) })
	assert.Panics(t, func() { b.DeployMines(-1) })
}

func TestDeployMinesAfterRevealPanics(t *testing.T) {
	b := NewEmptyBoard(3, 3)
	b.Open(0, 0)
	assert.Panics(t, func() { b.DeployMines(1) })
}
