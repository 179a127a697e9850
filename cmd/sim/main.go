// Command sim plays solver-driven games headless and reports how the
// solver fares. Per-game results go to a CSV file, the aggregate win
// rate to the log.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carolinefrey/Minesweeper/config"
	"github.com/carolinefrey/Minesweeper/game"
	"github.com/carolinefrey/Minesweeper/solver"
	"github.com/carolinefrey/Minesweeper/viewmodel"
)

var log = logrus.StandardLogger()

func main() {
	games := flag.Int("games", 1000, "number of games to play")
	diffName := flag.String("difficulty", "easy", "difficulty preset: easy, medium or hard")
	out := flag.String("out", "results.csv", "CSV file for per-game results")
	dump := flag.Bool("dump", false, "print the last game's final state as JSON")
	flag.Parse()

	diff, ok := config.DifficultyByName(*diffName)
	if !ok {
		log.Fatalf("unknown difficulty %q", *diffName)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Write([]string{"game", "outcome", "moves", "guesses", "millis"})

	log.Infof("playing %d %s games...", *games, diff.Name)

	wins := 0
	var last *game.Game
	for i := 0; i < *games; i++ {
		result := playGame(diff)
		last = result.game
		if result.won {
			wins++
		}

		outcome := "lost"
		if result.won {
			outcome = "won"
		}
		writer.Write([]string{
			strconv.Itoa(i),
			outcome,
			strconv.Itoa(result.moves),
			strconv.Itoa(result.guesses),
			strconv.FormatInt(result.elapsed.Milliseconds(), 10),
		})

		if i%1000 == 0 {
			fmt.Print(".")
		}
	}
	fmt.Println()

	log.WithFields(logrus.Fields{
		"games":    *games,
		"wins":     wins,
		"win_rate": fmt.Sprintf("%.1f%%", 100*float64(wins)/float64(*games)),
	}).Info("done")

	if *dump && last != nil {
		fmt.Println(viewmodel.JSON(last))
	}
}

type result struct {
	game    *game.Game
	won     bool
	moves   int
	guesses int
	elapsed time.Duration
}

// playGame runs one full game, feeding solver moves through the same
// pixel-based click path the GUI uses.
func playGame(diff config.Difficulty) result {
	start := time.Now()
	board := game.NewBoard(diff.Width, diff.Height, diff.Mines)
	g := game.NewGame(board, nil)
	bot := solver.New(board)

	var moves, guesses int
	for !g.Over() {
		move := bot.NextMove()
		if move == nil {
			break
		}
		moves++
		if move.IsGuess {
			guesses++
		}

		button := game.ButtonLeft
		if move.Type == solver.MoveFlag {
			button = game.ButtonRight
		}
		px := game.Margin + move.X*game.CellSize + game.CellSize/2
		py := game.Margin + move.Y*game.CellSize + game.CellSize/2
		g.OnClick(px, py, button)
	}

	return result{
		game:    g,
		won:     g.State() == game.Won,
		moves:   moves,
		guesses: guesses,
		elapsed: time.Since(start),
	}
}
