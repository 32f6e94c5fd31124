// Package session implements the conversational session controller. A
// controller is constructed by Enter only after the guard confirms a
// credential; it then owns the message log, the capture mode, and the
// pending-reply lifecycle until End tears everything down.
//
//	ctrl, err := session.Enter(ctx, &cfg)
//	err = ctrl.SendMessage(ctx, "hello")
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aayushCywarden/animagic-space/capture"
	"github.com/aayushCywarden/animagic-space/chatlog"
	"github.com/aayushCywarden/animagic-space/core/chat"
	"github.com/aayushCywarden/animagic-space/credstore"
	"github.com/aayushCywarden/animagic-space/guard"
	"github.com/aayushCywarden/animagic-space/notify"
	"github.com/aayushCywarden/animagic-space/observability"
	"github.com/aayushCywarden/animagic-space/responder"
	"github.com/aayushCywarden/animagic-space/sched"
)

// State is the lifecycle state of a session controller.
type State string

const (
	StateNotReady State = "not_ready"
	StateActive   State = "active"
)

// Notices surfaced at the session boundaries.
const (
	NoticeLoginRequired = "Please login to access the chat"
	NoticeLoggedOut     = "Logged out successfully"
)

// ReplyFailureText is appended as an inline assistant message when the
// reply source fails, so the transcript records the failure in place.
const ReplyFailureText = "Sorry, I couldn't come up with a reply. Please try again."

// Router is the navigation boundary. The controller calls RedirectToAuth
// when entry is refused and after logout.
type Router interface {
	RedirectToAuth(ctx context.Context)
}

type noopRouter struct{}

func (noopRouter) RedirectToAuth(context.Context) {}

// Option configures a Controller during Enter. Applied before the guard
// check; overrides replace config-created defaults.
type Option func(*Controller)

// WithClock overrides the wall clock, making timer behavior testable.
func WithClock(c sched.Clock) Option {
	return func(ctrl *Controller) { ctrl.clock = c }
}

// WithLog overrides the config-created message log.
func WithLog(l chatlog.Log) Option {
	return func(ctrl *Controller) { ctrl.log = l }
}

// WithGateway overrides the config-created responder gateway.
func WithGateway(g *responder.Gateway) Option {
	return func(ctrl *Controller) { ctrl.gateway = g }
}

// WithGuard overrides the config-created session guard.
func WithGuard(g *guard.Guard) Option {
	return func(ctrl *Controller) { ctrl.guard = g }
}

// WithNotifier overrides the default slog-backed notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(ctrl *Controller) { ctrl.notifier = n }
}

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(ctrl *Controller) { ctrl.observer = o }
}

// WithRouter sets the navigation boundary. Without it, redirects are
// no-ops.
func WithRouter(r Router) Option {
	return func(ctrl *Controller) { ctrl.router = r }
}

// WithOnMessage registers a callback invoked after every message lands in
// the log, in log order. Used by presentation layers to render the
// transcript incrementally.
func WithOnMessage(fn func(msg chat.Message)) Option {
	return func(ctrl *Controller) { ctrl.onMessage = fn }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(ctrl *Controller) { ctrl.logger = l }
}

// Controller owns one authenticated chat session. All methods are safe
// for concurrent use.
type Controller struct {
	mu            sync.Mutex
	state         State
	input         string
	lastID        int64
	awaitingReply bool

	greetingTimer sched.Timer
	pendingReply  sched.Timer

	greetingText  string
	greetingDelay time.Duration

	clock     sched.Clock
	log       chatlog.Log
	capture   *capture.Controller
	gateway   *responder.Gateway
	guard     *guard.Guard
	notifier  notify.Notifier
	observer  observability.Observer
	router    Router
	onMessage func(msg chat.Message)
	logger    *slog.Logger
}

// Enter authenticates and constructs a session controller. When the guard
// refuses entry, Enter emits the login-required notice, redirects to
// authentication, and returns guard.ErrAuthRequired without constructing
// any session resources. On success the controller is Active and the
// greeting is scheduled.
func Enter(ctx context.Context, cfg *Config, opts ...Option) (*Controller, error) {
	ctrl := &Controller{
		state:         StateNotReady,
		greetingText:  cfg.GreetingText,
		greetingDelay: time.Duration(cfg.GreetingDelayMS) * time.Millisecond,
		router:        noopRouter{},
	}
	for _, opt := range opts {
		opt(ctrl)
	}

	if ctrl.logger == nil {
		ctrl.logger = slog.Default()
	}
	if ctrl.notifier == nil {
		ctrl.notifier = notify.NewSlogNotifier(ctrl.logger)
	}
	if ctrl.observer == nil {
		ctrl.observer = observability.NewSlogObserver(ctrl.logger)
	}
	if ctrl.clock == nil {
		ctrl.clock = sched.WallClock{}
	}
	if ctrl.guard == nil {
		store, err := credstore.New(&cfg.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to create credential store: %w", err)
		}
		ctrl.guard = guard.New(store)
	}

	// The guard check runs before any session resource exists, so a
	// refused entry leaves nothing to tear down.
	if _, err := ctrl.guard.Enter(ctx); err != nil {
		ctrl.notifier.Notify(ctx, notify.Error(NoticeLoginRequired))
		ctrl.router.RedirectToAuth(ctx)
		return nil, err
	}

	if ctrl.log == nil {
		log, err := chatlog.New(&cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to create message log: %w", err)
		}
		ctrl.log = log
	}
	if ctrl.gateway == nil {
		source, err := responder.NewSource(&cfg.Responder)
		if err != nil {
			return nil, fmt.Errorf("failed to create reply source: %w", err)
		}
		latency := time.Duration(cfg.Responder.LatencyMS) * time.Millisecond
		ctrl.gateway = responder.NewGateway(source, ctrl.clock, latency, ctrl.logger)
	}
	ctrl.capture = capture.NewController(&cfg.Capture, ctrl.clock, ctrl.notifier, ctrl.applyTranscript)

	ctrl.state = StateActive
	ctrl.observer.OnEvent(ctx, observability.NewEvent(
		EventEnter, observability.LevelInfo, "session.Enter",
		map[string]any{"greeting_delay_ms": cfg.GreetingDelayMS},
	))

	ctrl.mu.Lock()
	ctrl.greetingTimer = ctrl.clock.AfterFunc(ctrl.greetingDelay, func() {
		ctrl.seedGreeting(ctx)
	})
	ctrl.mu.Unlock()

	return ctrl, nil
}

// seedGreeting appends the assistant greeting. Skipped when the session
// ended before the delay elapsed.
func (c *Controller) seedGreeting(ctx context.Context) {
	c.mu.Lock()
	c.greetingTimer = nil
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	msg, err := c.appendLocked(chat.SenderAssistant, c.greetingText)
	c.mu.Unlock()
	if err != nil {
		c.logger.Error("failed to seed greeting", "error", err)
		return
	}

	c.observer.OnEvent(ctx, observability.NewEvent(
		EventGreeting, observability.LevelVerbose, "session.seedGreeting",
		map[string]any{"id": msg.ID},
	))
	c.emit(msg)
}

// SendMessage appends a user message and requests a reply. Empty and
// whitespace-only text is ignored. While a reply is pending, further
// sends are refused with ErrReplyPending.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return ErrNotActive
	}
	if c.awaitingReply {
		c.mu.Unlock()
		return ErrReplyPending
	}

	msg, err := c.appendLocked(chat.SenderUser, text)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.input = ""
	c.awaitingReply = true
	history := c.log.Snapshot()
	c.pendingReply = c.gateway.RequestReply(ctx, history, func(reply chat.Message, err error) {
		c.deliverReply(ctx, reply, err)
	})
	c.mu.Unlock()

	c.observer.OnEvent(ctx, observability.NewEvent(
		EventMessageSent, observability.LevelInfo, "session.SendMessage",
		map[string]any{"id": msg.ID, "length": len(msg.Text)},
	))
	c.emit(msg)
	return nil
}

// deliverReply lands the assistant reply requested by SendMessage. A
// reply arriving after End is dropped.
func (c *Controller) deliverReply(ctx context.Context, reply chat.Message, srcErr error) {
	c.mu.Lock()
	c.pendingReply = nil
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.awaitingReply = false

	text := reply.Text
	if srcErr != nil {
		text = ReplyFailureText
	}
	msg, err := c.appendLocked(chat.SenderAssistant, text)
	c.mu.Unlock()
	if err != nil {
		c.logger.Error("failed to append reply", "error", err)
		return
	}

	if srcErr != nil {
		c.notifier.Notify(ctx, notify.Error("Failed to get a reply"))
		c.observer.OnEvent(ctx, observability.NewEvent(
			EventReplyFailed, observability.LevelError, "session.deliverReply",
			map[string]any{"id": msg.ID, "error": srcErr.Error()},
		))
	} else {
		c.observer.OnEvent(ctx, observability.NewEvent(
			EventReply, observability.LevelInfo, "session.deliverReply",
			map[string]any{"id": msg.ID, "length": len(msg.Text)},
		))
	}
	c.emit(msg)
}

// ToggleCapture flips the capture mode: Idle starts a recording,
// Recording stops one and schedules the transcription.
func (c *Controller) ToggleCapture(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return ErrNotActive
	}
	rec := c.capture
	c.mu.Unlock()

	if rec.Mode() == capture.ModeIdle {
		if err := rec.Start(ctx); err != nil {
			return err
		}
		c.observer.OnEvent(ctx, observability.NewEvent(
			EventCaptureStart, observability.LevelVerbose, "session.ToggleCapture", nil,
		))
		return nil
	}

	if err := rec.Stop(ctx); err != nil {
		return err
	}
	c.observer.OnEvent(ctx, observability.NewEvent(
		EventCaptureStop, observability.LevelVerbose, "session.ToggleCapture", nil,
	))
	return nil
}

// applyTranscript receives the delayed transcription and places it in the
// input slot. A transcript arriving after End is dropped.
func (c *Controller) applyTranscript(transcript string) {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.input = transcript
	c.mu.Unlock()

	c.observer.OnEvent(context.Background(), observability.NewEvent(
		EventTranscript, observability.LevelVerbose, "session.applyTranscript",
		map[string]any{"length": len(transcript)},
	))
}

// End tears the session down: every pending timer is stopped so no
// deferred effect lands afterwards, the transcript is cleared, the
// credential is revoked, and the router is sent back to authentication.
func (c *Controller) End(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return ErrNotActive
	}
	c.state = StateNotReady
	c.awaitingReply = false
	c.input = ""
	if c.greetingTimer != nil {
		c.greetingTimer.Stop()
		c.greetingTimer = nil
	}
	if c.pendingReply != nil {
		c.pendingReply.Stop()
		c.pendingReply = nil
	}
	c.mu.Unlock()

	c.capture.CancelPending()

	if err := c.log.Clear(); err != nil {
		c.logger.Error("failed to clear message log", "error", err)
	}
	if err := c.guard.Clear(ctx); err != nil {
		c.logger.Error("failed to clear credential", "error", err)
	}

	c.notifier.Notify(ctx, notify.Success(NoticeLoggedOut))
	c.observer.OnEvent(ctx, observability.NewEvent(
		EventEnd, observability.LevelInfo, "session.End", nil,
	))
	c.router.RedirectToAuth(ctx)
	return nil
}

// SendEnabled reports whether a send is currently possible: either the
// input holds non-whitespace text or a recording is in progress.
func SendEnabled(input string, mode capture.Mode) bool {
	return strings.TrimSpace(input) != "" || mode == capture.ModeRecording
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// AwaitingReply reports whether a sent message is still waiting on its
// reply.
func (c *Controller) AwaitingReply() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.awaitingReply
}

// Input returns the current input slot contents.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput replaces the input slot contents. Ignored after End.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return
	}
	c.input = text
}

// Messages returns the transcript so far, oldest first.
func (c *Controller) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Snapshot()
}

// CaptureMode returns the current capture mode.
func (c *Controller) CaptureMode() capture.Mode {
	return c.capture.Mode()
}

// SendEnabled reports whether a send is currently possible for this
// controller's input and capture mode.
func (c *Controller) SendEnabled() bool {
	c.mu.Lock()
	input := c.input
	c.mu.Unlock()
	return SendEnabled(input, c.capture.Mode())
}

// appendLocked assigns the next message ID and appends to the log. The
// caller holds c.mu.
func (c *Controller) appendLocked(sender chat.Sender, text string) (chat.Message, error) {
	c.lastID++
	msg := chat.NewMessage(c.lastID, sender, text)
	if err := c.log.Append(msg); err != nil {
		c.lastID--
		return chat.Message{}, err
	}
	return msg, nil
}

// emit forwards a landed message to the presentation callback.
func (c *Controller) emit(msg chat.Message) {
	if c.onMessage != nil {
		c.onMessage(msg)
	}
}
