package uzu

import (
	"time"

	"go.uber.org/zap"
)

// Timer measures wall-clock time for profiling.
type Timer struct {
	start time.Time
	now   func() time.Time
}

// NewTimer creates a running timer.
func NewTimer() *Timer {
	t := &Timer{now: time.Now}
	t.Restart()
	return t
}

// Restart resets the start time to now.
func (t *Timer) Restart() { t.start = t.now() }

// Elapsed returns the time since the last restart.
func (t *Timer) Elapsed() time.Duration { return t.now().Sub(t.start) }

// ElapsedMs returns the elapsed time in milliseconds.
func (t *Timer) ElapsedMs() float64 {
	return float64(t.Elapsed()) / float64(time.Millisecond)
}

// ElapsedSeconds returns the elapsed time in seconds.
func (t *Timer) ElapsedSeconds() float64 { return t.Elapsed().Seconds() }

// TimeScope starts a timer and returns a func that logs msg with the elapsed
// milliseconds at info level:
//
//	defer uzu.TimeScope("load level")()
func TimeScope(msg string) func() {
	t := NewTimer()
	l := logger
	return func() {
		l.Info(msg, zap.Float64("ms", t.ElapsedMs()))
	}
}
