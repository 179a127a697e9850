package game

import "time"

// Clock is the timer collaborator. The controller only starts and stops
// it; the display reads the elapsed time during rendering.
type Clock interface {
	StartCounting()
	StopCounting()
	Elapsed() time.Duration
}

// Stopwatch is the wall-clock Clock used by the real game. It is a pair
// of state toggles consulted at read time, not a background ticker.
type Stopwatch struct {
	startedAt time.Time
	stoppedAt time.Time
	running   bool
	started   bool
}

// NewStopwatch returns a stopped stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// StartCounting begins the count. Calling it again while running does
// not reset the start time.
func (s *Stopwatch) StartCounting() {
	if s.running {
		return
	}
	s.startedAt = time.Now()
	s.running = true
	s.started = true
}

// StopCounting freezes the elapsed time.
func (s *Stopwatch) StopCounting() {
	if !s.running {
		return
	}
	s.stoppedAt = time.Now()
	s.running = false
}

// Elapsed returns how long the watch has been counting.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	if s.running {
		return time.Since(s.startedAt)
	}
	return s.stoppedAt.Sub(s.startedAt)
}
