// Package sched provides cancellable one-shot scheduling for the session
// core. Every piece of simulated latency (greeting seed, reply delivery,
// transcription) runs through a Clock, so tests can substitute a manual
// clock and drive time deterministically.
package sched

import "time"

// Timer is a handle to a scheduled one-shot task.
type Timer interface {
	// Stop cancels the task. It reports whether the cancellation prevented
	// the task from running; false means the task already ran or was
	// stopped earlier. A stopped task never runs.
	Stop() bool
}

// Clock creates one-shot timers and reports the current time.
type Clock interface {
	Now() time.Time
	// AfterFunc arranges for fn to run once after d has elapsed and
	// returns a handle that can cancel it.
	AfterFunc(d time.Duration, fn func()) Timer
}

// WallClock schedules against real time using time.AfterFunc.
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}

func (WallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return wallTimer{t: time.AfterFunc(d, fn)}
}

type wallTimer struct {
	t *time.Timer
}

func (w wallTimer) Stop() bool {
	return w.t.Stop()
}
