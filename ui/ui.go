// Package ui is the desktop frontend. It owns the window, converts
// mouse and key events into controller calls, and renders every cell
// from its current state. No game rules live here.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/carolinefrey/Minesweeper/config"
	"github.com/carolinefrey/Minesweeper/game"
	"github.com/carolinefrey/Minesweeper/scores"
	"github.com/carolinefrey/Minesweeper/solver"
)

var log = logrus.StandardLogger()

// Bottom panel geometry, below the grid.
const (
	space     = 25 // gap between the grid and the info boxes
	boxHeight = 64
)

// UI drives one game in an ebiten window.
type UI struct {
	game  *game.Game
	cfg   config.Config
	store *scores.Store

	hint     *solver.Move
	recorded bool
	fontMain font.Face
}

// New wires a controller, its configuration and a score store into a
// window-sized UI.
func New(g *game.Game, cfg config.Config, store *scores.Store) *UI {
	u := &UI{
		game:     g,
		cfg:      cfg,
		store:    store,
		fontMain: basicfont.Face7x13,
	}
	w, h := u.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Minesweeper!")
	return u
}

// Run blocks until the window closes or the player quits.
func (u *UI) Run() error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(u)
}

// Layout reports the fixed window size: margins around the grid plus
// the info box row underneath.
func (u *UI) Layout(_, _ int) (int, int) {
	w := 2*game.Margin + u.game.GridWidth()
	h := 2*game.Margin + u.game.GridHeight() + space + boxHeight
	return w, h
}

// Update polls input and forwards it to the controller. Runs on the
// single ebiten goroutine, so the whole model stays lock-free.
func (u *UI) Update() error {
	for _, ch := range ebiten.AppendInputChars(nil) {
		if u.game.OnKey(ch) {
			return ebiten.Termination
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) && !u.game.Over() {
		u.hint = solver.New(u.game.Board).NextMove()
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		u.game.OnClick(mx, my, game.ButtonLeft)
		u.hint = nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		u.game.OnClick(mx, my, game.ButtonRight)
		u.hint = nil
	}

	if u.game.State() == game.Won && !u.recorded {
		u.recorded = true
		u.recordScore()
	}
	return nil
}

// recordScore saves the finished game to the difficulty's top-score
// table.
func (u *UI) recordScore() {
	made, err := u.store.Record(u.cfg.Difficulty.Name, u.cfg.Username, u.game.Elapsed())
	if err != nil {
		log.WithError(err).Error("could not save score")
		return
	}
	if made {
		log.WithFields(logrus.Fields{
			"difficulty": u.cfg.Difficulty.Name,
			"user":       u.cfg.Username,
		}).Info("new top score")
	}
}
