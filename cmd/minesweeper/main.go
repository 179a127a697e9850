package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carolinefrey/Minesweeper/config"
	"github.com/carolinefrey/Minesweeper/game"
	"github.com/carolinefrey/Minesweeper/scores"
	"github.com/carolinefrey/Minesweeper/ui"
)

func main() {
	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	logrus.WithFields(logrus.Fields{
		"difficulty": cfg.Difficulty.Name,
		"board":      logrus.Fields{"cols": cfg.Difficulty.Width, "rows": cfg.Difficulty.Height},
		"mines":      cfg.Difficulty.Mines,
		"user":       cfg.Username,
	}).Info("starting minesweeper")

	board := game.NewBoard(cfg.Difficulty.Width, cfg.Difficulty.Height, cfg.Difficulty.Mines)
	g := game.NewGame(board, nil)
	store := scores.NewStore(cfg.ScoreDir)

	if err := ui.New(g, cfg, store).Run(); err != nil {
		logrus.Fatal(err)
	}
}
