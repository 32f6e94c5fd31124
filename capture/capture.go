// Package capture drives the voice capture mode of a session. The
// controller switches between Idle and Recording, announces each switch
// through a notifier, and on stop schedules a simulated transcription
// that is delivered to the session after a short delay.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aayushCywarden/animagic-space/notify"
	"github.com/aayushCywarden/animagic-space/sched"
)

// Mode is the current state of the capture controller.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeRecording Mode = "recording"
)

// Notices surfaced on mode transitions.
const (
	NoticeStarted = "Voice recording started... Speak now"
	NoticeStopped = "Voice recording stopped"
)

// ErrInvalidTransition is returned when Start is called while already
// recording or Stop is called while idle.
var ErrInvalidTransition = errors.New("capture: invalid mode transition")

// Controller owns the capture mode for one session. It is safe for
// concurrent use.
type Controller struct {
	mu      sync.Mutex
	mode    Mode
	pending sched.Timer

	clock      sched.Clock
	delay      time.Duration
	transcript string
	notifier   notify.Notifier
	deliver    func(transcript string)
}

// NewController creates an idle Controller. deliver receives the
// transcript once the transcription delay elapses after Stop; a nil
// deliver discards transcripts.
func NewController(cfg *Config, clock sched.Clock, notifier notify.Notifier, deliver func(transcript string)) *Controller {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &Controller{
		mode:       ModeIdle,
		clock:      clock,
		delay:      time.Duration(cfg.TranscribeDelayMS) * time.Millisecond,
		transcript: cfg.Transcript,
		notifier:   notifier,
		deliver:    deliver,
	}
}

// Mode returns the current capture mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Start switches from Idle to Recording and announces the switch.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeIdle {
		return fmt.Errorf("start while %s: %w", c.mode, ErrInvalidTransition)
	}
	c.mode = ModeRecording
	c.notifier.Notify(ctx, notify.Info(NoticeStarted))
	return nil
}

// Stop switches from Recording to Idle, announces the switch, and
// schedules transcript delivery after the configured delay. A stop
// with no recording in progress is rejected.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeRecording {
		return fmt.Errorf("stop while %s: %w", c.mode, ErrInvalidTransition)
	}
	c.mode = ModeIdle
	c.notifier.Notify(ctx, notify.Success(NoticeStopped))

	transcript := c.transcript
	c.pending = c.clock.AfterFunc(c.delay, func() {
		c.mu.Lock()
		deliver := c.deliver
		c.pending = nil
		c.mu.Unlock()

		if deliver != nil {
			deliver(transcript)
		}
	})
	return nil
}

// CancelPending stops an in-flight transcription, if any. The session
// calls this on teardown so a transcript never lands after logout.
func (c *Controller) CancelPending() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
