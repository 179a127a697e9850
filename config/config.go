package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// Difficulty names a board size and mine count, and keys the top-score
// file for that setup.
type Difficulty struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

// The hard preset matches the classic course layout: a 20-row by
// 30-column grid.
var presets = []Difficulty{
	{Name: "easy", Width: 9, Height: 9, Mines: 10},
	{Name: "medium", Width: 16, Height: 16, Mines: 40},
	{Name: "hard", Width: 30, Height: 20, Mines: 99},
}

// Config holds everything the game reads from the environment.
type Config struct {
	Username   string
	Difficulty Difficulty
	ScoreDir   string
	LogLevel   string
}

// Load reads configuration from a .env file (when present) and the
// environment. Every value has a default so the game starts with no
// environment at all.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded")
	}

	diff, ok := DifficultyByName(getEnvWithDefault("MINESWEEPER_DIFFICULTY", "hard"))
	if !ok {
		log.Warnf("unknown difficulty %q, using hard", os.Getenv("MINESWEEPER_DIFFICULTY"))
		diff = presets[2]
	}

	// A custom board overrides the preset dimensions.
	diff.Width = getEnvAsIntWithDefault("MINESWEEPER_COLS", diff.Width)
	diff.Height = getEnvAsIntWithDefault("MINESWEEPER_ROWS", diff.Height)
	diff.Mines = getEnvAsIntWithDefault("MINESWEEPER_MINES", diff.Mines)
	if diff.Width < 1 {
		diff.Width = 1
	}
	if diff.Height < 1 {
		diff.Height = 1
	}
	if max := diff.Width*diff.Height - 1; diff.Mines > max {
		log.Warnf("mine count %d too high for %dx%d board, clamping to %d", diff.Mines, diff.Width, diff.Height, max)
		diff.Mines = max
	}
	if diff.Mines < 1 {
		diff.Mines = 1
	}

	return Config{
		Username:   getEnvWithDefault("MINESWEEPER_USER", defaultUsername()),
		Difficulty: diff,
		ScoreDir:   getEnvWithDefault("MINESWEEPER_SCORE_DIR", defaultScoreDir()),
		LogLevel:   getEnvWithDefault("MINESWEEPER_LOG_LEVEL", "info"),
	}
}

// DifficultyByName looks up a preset by its (case-insensitive) name.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Difficulty{}, false
}

// Presets returns the built-in difficulty levels.
func Presets() []Difficulty {
	out := make([]Difficulty, len(presets))
	copy(out, presets)
	return out
}

func defaultUsername() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func defaultScoreDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scores"
	}
	return filepath.Join(dir, "minesweeper", "scores")
}

// getEnvWithDefault retrieves an environment variable or returns the
// default when it is not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an
// integer, falling back to the default when unset or malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("environment variable %s must be an integer, got %q", key, valueStr)
		return defaultValue
	}
	return value
}
