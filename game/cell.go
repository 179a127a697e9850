package game

// Cell holds the state of a single square on the board.
type Cell struct {
	IsMine        bool // a mine is hidden in this cell
	IsRevealed    bool // the cell has been opened
	IsFlagged     bool // the player marked this cell as a suspected mine
	NeighborCount int  // mines among the up-to-8 adjacent cells, 0..8
}

// Revealable reports whether opening this cell would change it.
// Revealing is monotonic: once opened a cell never closes again.
func (c *Cell) Revealable() bool {
	return !c.IsRevealed
}

// CoastIsClear reports whether the cell has no adjacent mines, which is
// what allows the reveal flood to spread through it.
func (c *Cell) CoastIsClear() bool {
	return c.NeighborCount == 0
}
