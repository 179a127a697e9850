package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStopwatchZeroBeforeStart(t *testing.T) {
	s := NewStopwatch()
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestStopwatchCountsWhileRunning(t *testing.T) {
	s := NewStopwatch()
	s.StartCounting()
	time.Sleep(5 * time.Millisecond)
	assert.Greater(t, s.Elapsed(), time.Duration(0))
}

func TestStopwatchFreezesOnStop(t *testing.T) {
	s := NewStopwatch()
	s.StartCounting()
	time.Sleep(5 * time.Millisecond)
	s.StopCounting()

	frozen := s.Elapsed()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, frozen, s.Elapsed())
}

func TestStopwatchStartTwiceKeepsOrigin(t *testing.T) {
	s := NewStopwatch()
	s.StartCounting()
	time.Sleep(5 * time.Millisecond)
	before := s.Elapsed()
	s.StartCounting()
	assert.GreaterOrEqual(t, s.Elapsed(), before, "restart must not rewind the clock")
}
