package viewmodel

import (
	"encoding/json"

	"github.com/carolinefrey/Minesweeper/game"
)

// CellView is the render-facing state of one cell. State is one of
// "hidden", "flagged" or "opened".
type CellView struct {
	State  string `json:"state"`
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

// GameView is a full snapshot of a game, safe to serialize.
type GameView struct {
	Cells          [][]CellView `json:"cells"`
	MinesDeployed  int          `json:"mines_deployed"`
	MinesRemaining int          `json:"mines_remaining"`
	CellsRemaining int          `json:"cells_remaining"`
	Flags          int          `json:"flags"`
	State          string       `json:"state"`
	ElapsedSeconds int          `json:"elapsed_seconds"`
}

// NewGameView snapshots the current state of a game. Mines stay hidden
// in the view until the game ends: on a loss every mine shows as
// opened, on a win every mine shows as flagged.
func NewGameView(g *game.Game) GameView {
	b := g.Board
	won := g.State() == game.Won
	lost := g.State() == game.Lost

	grid := make([][]CellView, b.Height)
	for y := 0; y < b.Height; y++ {
		grid[y] = make([]CellView, b.Width)
		for x := 0; x < b.Width; x++ {
			c := b.Cells[y][x]
			v := CellView{}

			switch {
			case c.IsRevealed:
				v.State = "opened"
				v.IsMine = c.IsMine
				if !c.IsMine {
					v.Count = c.NeighborCount
				}
			case c.IsFlagged:
				v.State = "flagged"
			default:
				v.State = "hidden"
			}

			if lost && c.IsMine {
				v.State = "opened"
				v.IsMine = true
			}
			if won && c.IsMine {
				v.State = "flagged"
			}
			grid[y][x] = v
		}
	}

	return GameView{
		Cells:          grid,
		MinesDeployed:  b.MineCount,
		MinesRemaining: b.RemainingMines(),
		CellsRemaining: b.RemainingCells(),
		Flags:          b.FlagCount,
		State:          g.State().String(),
		ElapsedSeconds: int(g.Elapsed().Seconds()),
	}
}

// JSON renders the snapshot for external consumers. A nil game yields
// an empty object.
func JSON(g *game.Game) string {
	if g == nil {
		return "{}"
	}
	bytes, err := json.Marshal(NewGameView(g))
	if err != nil {
		return "{}"
	}
	return string(bytes)
}
