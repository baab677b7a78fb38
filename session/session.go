// Package session owns the per-innings game object and the fixed-order tick
// loop that drives the batting pipeline. There is no ambient game state: the
// Session is created by the host loop and passed to every component.
package session

import (
	"math/rand"

	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/physics"
	"github.com/SanoKhan22/CricketAR-sub000/replay"
	"github.com/SanoKhan22/CricketAR-sub000/session/event"
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// EventHandler consumes the notifications the session emits. Events are
// delivered in queue order, once per tick, after the whole update path ran.
type EventHandler interface {
	HandleEvent(ev event.RemoteEvent)
}

// NopHandler discards all events.
type NopHandler struct{}

func (NopHandler) HandleEvent(event.RemoteEvent) {}

// scheduledCall is a pacing callback due at a future tick. The generation
// stamp makes calls scheduled before a restart harmless no-ops.
type scheduledCall struct {
	dueTick    int64
	generation uint64
	fn         func()
}

// Session is one batting session: the match totals, the live delivery, the
// tracked bat and the swing phase machine, driven by Tick.
type Session struct {
	log *logrus.Logger
	id  uuid.UUID

	cfg config.Config

	feed tracking.Feed
	ball physics.Body

	handler  EventHandler
	recorder *replay.Recorder

	bat      BatComponent
	swing    SwingComponent
	delivery DeliveryComponent
	score    ScoreComponent

	currentTick int64
	generation  uint64

	rng *rand.Rand

	lastSample tracking.Sample

	eventQueue []event.RemoteEvent
	scheduled  []scheduledCall

	closed atomic.Bool
}

// New creates a session around the given hand feed and ball body. A nil ball
// falls back to the default projectile.
func New(log *logrus.Logger, cfg config.Config, feed tracking.Feed, ball physics.Body) *Session {
	if ball == nil {
		ball = physics.NewBall(physics.DefaultOptions())
	}
	return &Session{
		log: log,
		id:  uuid.New(),

		cfg: cfg,

		feed: feed,
		ball: ball,

		handler: NopHandler{},

		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Log returns the session logger.
func (s *Session) Log() *logrus.Logger {
	return s.log
}

// Config returns the session's configuration table.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Ball returns the rigid-body collaborator for the current delivery.
func (s *Session) Ball() physics.Body {
	return s.ball
}

// Rng returns the session's seeded random source. The delivery generator is
// its only consumer, keeping scripted sessions reproducible.
func (s *Session) Rng() *rand.Rand {
	return s.rng
}

// SetHandler registers the presentation collaborator receiving notifications.
func (s *Session) SetHandler(h EventHandler) {
	if h == nil {
		h = NopHandler{}
	}
	s.handler = h
}

// SetRecorder attaches a replay recorder. A nil recorder disables recording.
func (s *Session) SetRecorder(r *replay.Recorder) {
	s.recorder = r
}

// Record appends an event to the replay stream, if one is attached.
func (s *Session) Record(ev replay.Event) {
	if s.recorder != nil {
		s.recorder.Record(ev)
	}
}

// FlushReplay hands the buffered replay stream to its sink off the tick path.
func (s *Session) FlushReplay() {
	if s.recorder != nil {
		s.recorder.Flush()
	}
}

// CurrentTick returns the session's tick counter. All timers in the pipeline
// count ticks against the configured tick rate; nothing reads the wall clock.
func (s *Session) CurrentTick() int64 {
	return s.currentTick
}

// Dt returns the fixed seconds per tick.
func (s *Session) Dt() float32 {
	return s.cfg.Dt()
}

// Tick advances the session by one frame. The order within a tick is fixed:
// physics step, hand-pose ingestion, bat and swing updates, the delivery's
// contact and outcome checks, due pacing callbacks, then the event flush.
func (s *Session) Tick() {
	if s.closed.Load() {
		return
	}
	defer s.recoverTick()

	s.currentTick++

	if s.delivery != nil && s.delivery.BallLive() {
		s.ball.Step(s.Dt())
	}

	// The feed runs on its own capture cadence. Absence of a fresh sample
	// means the previous pose persists.
	if sample, ok := s.feed.Latest(); ok {
		s.lastSample = sample.Sanitize()
	}

	if s.bat != nil {
		s.bat.Update(s.lastSample)
	}
	if s.swing != nil {
		s.swing.Update(s.lastSample)
	}
	if s.delivery != nil {
		s.delivery.Update()
	}

	s.runScheduled()
	s.flushEvents()
}

// Bowl starts the next delivery. It fails if one is already live or the
// innings is over.
func (s *Session) Bowl() error {
	return s.delivery.Bowl()
}

// Restart resets the match to a fresh innings. Pending pacing callbacks are
// cancelled by the generation bump, so a stale "next delivery" timer cannot
// corrupt the fresh state.
func (s *Session) Restart() {
	s.generation++
	s.scheduled = s.scheduled[:0]

	s.score.Reset()
	s.swing.Reset()
	s.bat.Reset()
	s.delivery.Reset()

	s.log.WithField("session", s.id).Info("match restarted")
}

// ScheduleAfter runs fn after the given number of ticks, unless the session
// is restarted first.
func (s *Session) ScheduleAfter(ticks int64, fn func()) {
	s.scheduled = append(s.scheduled, scheduledCall{
		dueTick:    s.currentTick + ticks,
		generation: s.generation,
		fn:         fn,
	})
}

func (s *Session) runScheduled() {
	remaining := s.scheduled[:0]
	due := make([]scheduledCall, 0, 2)
	for _, call := range s.scheduled {
		if call.generation != s.generation {
			continue
		}
		if call.dueTick <= s.currentTick {
			due = append(due, call)
			continue
		}
		remaining = append(remaining, call)
	}
	s.scheduled = remaining
	for _, call := range due {
		call.fn()
	}
}

// QueueEvent appends a notification to this tick's event queue.
func (s *Session) QueueEvent(ev event.RemoteEvent) {
	s.eventQueue = append(s.eventQueue, ev)
}

func (s *Session) flushEvents() {
	if len(s.eventQueue) == 0 {
		return
	}
	queue := s.eventQueue
	s.eventQueue = nil
	for _, ev := range queue {
		s.handler.HandleEvent(ev)
	}
}

// Close shuts the session down. Further ticks are no-ops. The replay stream
// is flushed and its writes are waited for, so the sink may be closed once
// Close returns.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.recorder != nil {
		return s.recorder.Close()
	}
	return nil
}

func (s *Session) recoverTick() {
	if v := recover(); v != nil {
		sentry.CurrentHub().Recover(v)
		s.log.WithField("session", s.id).Errorf("recovered from tick panic: %v", v)
	}
}
