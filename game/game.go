package game

import (
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// Cell geometry on screen, in pixels. The event source hands the
// controller raw pixel coordinates; these constants map them to cells.
const (
	CellSize = 20 // width and height of one drawn cell
	Margin   = 50 // gap between the window edge and the grid
)

// State is the controller phase. Won and Lost are terminal: once either
// is reached no input mutates the game again.
type State int

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Button identifies which mouse button was clicked. Anything other than
// left and right is ignored.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Game routes click and key events from the hosting GUI into board
// mutations and tracks the win/lose state machine. Everything runs
// synchronously inside whatever callback delivers the event.
type Game struct {
	Board *Board

	state State
	clock Clock
}

// NewGame wraps a deployed board in a controller. A nil clock gets a
// wall-clock stopwatch.
func NewGame(board *Board, clock Clock) *Game {
	if clock == nil {
		clock = NewStopwatch()
	}
	return &Game{
		Board: board,
		state: NotStarted,
		clock: clock,
	}
}

// State returns the current controller phase.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the game has reached a terminal state.
func (g *Game) Over() bool {
	return g.state == Won || g.state == Lost
}

// Elapsed returns the time shown on the game timer.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed()
}

// GridWidth returns the drawn width of the cell grid in pixels.
func (g *Game) GridWidth() int {
	return g.Board.Width * CellSize
}

// GridHeight returns the drawn height of the cell grid in pixels.
func (g *Game) GridHeight() int {
	return g.Board.Height * CellSize
}

// CellFromPixel maps a window pixel position to a cell coordinate.
// Positions outside the drawn grid report ok = false.
func (g *Game) CellFromPixel(px, py int) (x, y int, ok bool) {
	if px < Margin || py < Margin || px >= Margin+g.GridWidth() || py >= Margin+g.GridHeight() {
		return 0, 0, false
	}
	return (px - Margin) / CellSize, (py - Margin) / CellSize, true
}

// OnClick handles one mouse click at pixel position (px, py). Clicks
// after the game has ended, clicks outside the grid, and middle-button
// clicks are all ignored without touching any state.
func (g *Game) OnClick(px, py int, button Button) {
	if g.Over() {
		return
	}
	if button != ButtonLeft && button != ButtonRight {
		return
	}
	x, y, ok := g.CellFromPixel(px, py)
	if !ok {
		return
	}

	switch button {
	case ButtonLeft:
		g.openCell(x, y)
	case ButtonRight:
		g.flagCell(x, y)
	}
}

// openCell is the left-click path: start the game on the first click,
// reveal the cell, then settle win or loss.
func (g *Game) openCell(x, y int) {
	if g.state == NotStarted {
		g.state = InProgress
		g.clock.StartCounting()
	}
	log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("open cell")

	if g.Board.Open(x, y) {
		g.Board.RevealAllMines()
		g.state = Lost
		g.clock.StopCounting()
		log.Info("you hit a mine, game over")
		return
	}
	if g.Board.CheckClear() {
		g.win()
	}
}

// flagCell is the right-click path: toggle the flag and check the
// all-mines-flagged win. Flag bookkeeping lives on the board; the
// deployed mine count never changes here.
func (g *Game) flagCell(x, y int) {
	if !g.Board.ToggleFlag(x, y) {
		return
	}
	log.WithFields(logrus.Fields{"x": x, "y": y, "flags": g.Board.FlagCount}).Debug("toggle flag")

	if g.Board.AllMinesFlagged() {
		g.win()
	}
}

func (g *Game) win() {
	g.state = Won
	g.clock.StopCounting()
	log.WithField("elapsed", g.clock.Elapsed().Round(time.Second)).Info("you win")
}

// OnKey handles a typed character and reports whether the player asked
// to quit. Only q and Q mean anything; every other key is ignored.
func (g *Game) OnKey(ch rune) (quit bool) {
	switch ch {
	case 'q', 'Q':
		return true
	default:
		return false
	}
}
