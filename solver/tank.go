package solver

import (
	"github.com/carolinefrey/Minesweeper/game"
)

// tankLimit caps the number of frontier cells enumerated per segment.
// Beyond this the 2^n search is too slow to be worth it.
const tankLimit = 18

// TankSolver enumerates every mine assignment consistent with the
// revealed numbers on the frontier. Cells that are mines in no
// assignment are provably safe; cells that are mines in all of them are
// provably mines.
type TankSolver struct {
	Board *game.Board
}

func NewTankSolver(b *game.Board) *TankSolver {
	return &TankSolver{Board: b}
}

// Solve runs the enumeration and returns a certain move if one exists,
// otherwise the lowest-probability open among the frontier cells, or
// nil when there is no frontier at all.
func (ts *TankSolver) Solve() *Move {
	segments := ts.createSegments()

	var bestMove *Move
	bestProb := 1.0

	// Segments share no constraints, so each is solved independently.
	for _, seg := range segments {
		if len(seg.unknowns) > tankLimit {
			continue
		}

		solutions := ts.solveSegment(seg)
		if len(solutions) == 0 {
			continue
		}

		counts := make([]int, len(seg.unknowns))
		for _, sol := range solutions {
			for i, isMine := range sol {
				if isMine {
					counts[i]++
				}
			}
		}

		total := float64(len(solutions))
		for i, count := range counts {
			prob := float64(count) / total
			p := seg.unknowns[i]

			if prob == 0.0 {
				return &Move{X: p.x, Y: p.y, Type: MoveOpen, Strategy: "Tank", Confidence: 1.0}
			}
			if prob == 1.0 && !ts.Board.Cells[p.y][p.x].IsFlagged {
				return &Move{X: p.x, Y: p.y, Type: MoveFlag, Strategy: "Tank", Confidence: 1.0}
			}

			if prob < bestProb {
				bestProb = prob
				bestMove = &Move{
					X: p.x, Y: p.y,
					Type:       MoveOpen,
					Strategy:   "Tank(Prob)",
					Confidence: 1.0 - prob,
				}
			}
		}
	}

	return bestMove
}

// segment is one connected component of the frontier: the hidden cells
// in it and the number constraints that bind them.
type segment struct {
	unknowns []pos
	rules    []rule
}

// rule says that exactly mines of the listed cells (indexes into
// segment.unknowns) hide a mine.
type rule struct {
	cells []int
	mines int
}

// createSegments collects every hidden cell adjacent to a revealed
// number and splits them into connected components so each can be
// enumerated separately.
func (ts *TankSolver) createSegments() []*segment {
	unknownMap := make(map[int]pos) // key: y*width+x
	var numberedCells []pos

	for y := 0; y < ts.Board.Height; y++ {
		for x := 0; x < ts.Board.Width; x++ {
			c := ts.Board.Cells[y][x]
			if !c.IsRevealed || c.NeighborCount == 0 {
				continue
			}
			_, flags, hidden := neighborInfo(ts.Board, x, y)
			// Satisfied numbers contribute no constraint.
			if flags == c.NeighborCount || len(hidden) == 0 {
				continue
			}
			for _, p := range hidden {
				unknownMap[p.y*ts.Board.Width+p.x] = p
			}
			numberedCells = append(numberedCells, pos{x, y})
		}
	}

	// Two unknowns are connected when some number constrains both.
	adj := make(map[int][]int)
	for _, numPos := range numberedCells {
		_, _, neighbors := neighborInfo(ts.Board, numPos.x, numPos.y)
		for i := 0; i < len(neighbors)-1; i++ {
			u1 := neighbors[i].y*ts.Board.Width + neighbors[i].x
			for j := i + 1; j < len(neighbors); j++ {
				u2 := neighbors[j].y*ts.Board.Width + neighbors[j].x
				adj[u1] = append(adj[u1], u2)
				adj[u2] = append(adj[u2], u1)
			}
		}
	}

	visited := make(map[int]bool)
	var segments []*segment

	for key := range unknownMap {
		if visited[key] {
			continue
		}

		var groupKeys []int
		queue := []int{key}
		visited[key] = true
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]
			groupKeys = append(groupKeys, curr)
			for _, n := range adj[curr] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		seg := &segment{unknowns: make([]pos, len(groupKeys))}
		localIndex := make(map[int]int)
		for i, k := range groupKeys {
			seg.unknowns[i] = unknownMap[k]
			localIndex[k] = i
		}

		for _, numPos := range numberedCells {
			_, flags, neighbors := neighborInfo(ts.Board, numPos.x, numPos.y)
			if len(neighbors) == 0 {
				continue
			}
			// A constraint's cells are all in the same component, so
			// checking the first is enough.
			firstKey := neighbors[0].y*ts.Board.Width + neighbors[0].x
			if _, ok := localIndex[firstKey]; !ok {
				continue
			}
			r := rule{
				cells: make([]int, len(neighbors)),
				mines: ts.Board.Cells[numPos.y][numPos.x].NeighborCount - flags,
			}
			for i, n := range neighbors {
				r.cells[i] = localIndex[n.y*ts.Board.Width+n.x]
			}
			seg.rules = append(seg.rules, r)
		}
		segments = append(segments, seg)
	}

	return segments
}

func (ts *TankSolver) solveSegment(seg *segment) [][]bool {
	var solutions [][]bool
	config := make([]bool, len(seg.unknowns))
	ts.backtrack(seg, 0, config, &solutions)
	return solutions
}

func (ts *TankSolver) backtrack(seg *segment, index int, config []bool, solutions *[][]bool) {
	if index == len(seg.unknowns) {
		if ts.isValid(seg, config, true) {
			sol := make([]bool, len(config))
			copy(sol, config)
			*solutions = append(*solutions, sol)
		}
		return
	}

	if !ts.isValid(seg, config, false) {
		return
	}

	config[index] = true
	ts.backtrack(seg, index+1, config, solutions)

	config[index] = false
	ts.backtrack(seg, index+1, config, solutions)
}

// isValid checks the constraints against a partial or complete
// assignment. Partial checks only reject overshoot; completing moves
// are validated exactly.
func (ts *TankSolver) isValid(seg *segment, config []bool, isFinal bool) bool {
	for _, r := range seg.rules {
		mines := 0
		for _, idx := range r.cells {
			if config[idx] {
				mines++
			}
		}
		if isFinal {
			if mines != r.mines {
				return false
			}
		} else if mines > r.mines {
			return false
		}
	}
	return true
}
