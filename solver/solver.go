package solver

import (
	"math/rand"

	"github.com/carolinefrey/Minesweeper/game"
)

// MoveType says what the suggested move does to the target cell.
type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

// Move is one suggested play.
type Move struct {
	X, Y       int
	Type       MoveType
	IsGuess    bool    // true when the move is not logically forced
	Strategy   string  // "Logic", "Tank", "Tank(Prob)" or "Random"
	Confidence float64 // probability the move is safe, 0.0..1.0
}

// Solver suggests moves for a board. It never mutates the board; the
// caller applies the returned move.
type Solver struct {
	Board *game.Board
}

func New(b *game.Board) *Solver {
	return &Solver{Board: b}
}

// NextMove returns the best move the solver can find, or nil when there
// is nothing left to play. Deterministic deductions are tried first:
// single-cell counting rules, then exhaustive enumeration of the mine
// frontier. Only when neither pins down a cell does it fall back to a
// uniform random guess.
func (s *Solver) NextMove() *Move {
	if move := s.findSafeMove(); move != nil {
		move.IsGuess = false
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	if move := s.findFlagMove(); move != nil {
		move.IsGuess = false
		move.Strategy = "Logic"
		move.Confidence = 1.0
		return move
	}

	if move := NewTankSolver(s.Board).Solve(); move != nil {
		move.IsGuess = move.Confidence < 1.0
		return move
	}

	if move := s.findRandomMove(); move != nil {
		move.IsGuess = true
		return move
	}
	return nil
}

// findSafeMove looks for a revealed number whose mine quota is already
// met by flags. Any remaining hidden neighbor of such a cell is safe.
func (s *Solver) findSafeMove() *Move {
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			cell := s.Board.Cells[y][x]
			if !cell.IsRevealed || cell.NeighborCount == 0 {
				continue
			}
			_, flags, hidden := neighborInfo(s.Board, x, y)
			if flags == cell.NeighborCount && len(hidden) > 0 {
				target := hidden[0]
				return &Move{X: target.x, Y: target.y, Type: MoveOpen}
			}
		}
	}
	return nil
}

// findFlagMove looks for a revealed number whose hidden neighbors must
// all be mines, and flags the first unflagged one.
func (s *Solver) findFlagMove() *Move {
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			cell := s.Board.Cells[y][x]
			if !cell.IsRevealed || cell.NeighborCount == 0 {
				continue
			}
			totalHidden, flags, hidden := neighborInfo(s.Board, x, y)
			if totalHidden+flags == cell.NeighborCount && totalHidden > 0 {
				for _, p := range hidden {
					if !s.Board.Cells[p.y][p.x].IsFlagged {
						return &Move{X: p.x, Y: p.y, Type: MoveFlag}
					}
				}
			}
		}
	}
	return nil
}

// findRandomMove picks a uniform random hidden, unflagged cell.
func (s *Solver) findRandomMove() *Move {
	var candidates []pos
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			c := s.Board.Cells[y][x]
			if !c.IsRevealed && !c.IsFlagged {
				candidates = append(candidates, pos{x, y})
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	choice := candidates[rand.Intn(len(candidates))]
	return &Move{
		X: choice.x, Y: choice.y,
		Type:       MoveOpen,
		Strategy:   "Random",
		Confidence: 0.0,
	}
}

type pos struct{ x, y int }

// neighborInfo summarizes the 8-neighborhood of (cx, cy): how many
// neighbors are hidden and unflagged, how many are flagged, and the
// positions of the hidden unflagged ones.
func neighborInfo(b *game.Board, cx, cy int) (hiddenCount int, flags int, hidden []pos) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := cx+dx, cy+dy
			if !b.In(nx, ny) {
				continue
			}
			neighbor := b.Cells[ny][nx]
			if neighbor.IsFlagged {
				flags++
			} else if !neighbor.IsRevealed {
				hiddenCount++
				hidden = append(hidden, pos{nx, ny})
			}
		}
	}
	return
}
