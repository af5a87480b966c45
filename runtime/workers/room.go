package workers

import (
	"context"
	"counting-lab/contract"
	"counting-lab/domain"
	"counting-lab/domain/event"
	"counting-lab/domain/extract"
	"counting-lab/observability"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Ensure *RoomWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*RoomWorker)(nil)

// gracePeriod is the transient recovery window. It lives only inside its
// room's worker and is never persisted. The handle disambiguates stale
// countdown commands from a superseded window; cancel stops the countdown
// task at its next tick boundary.
type gracePeriod struct {
	id       uuid.UUID
	expected int64
	excluded string
	cancel   context.CancelFunc
}

// RoomWorker is the single owner of one room's counting state machine.
// All transitions for the room (evaluation, corrections, countdown ticks,
// expiry) arrive through one command channel and are handled serially, so
// no two messages can observe the same count, and a correction racing an
// expiry resolves to whichever command the worker reads first. Different
// rooms run their own workers and never coordinate.
type RoomWorker struct {
	room       domain.RoomID
	commands   chan domain.Command
	repository contract.ICountRepository
	notifier   contract.INotifier
	events     chan<- event.DomainEvent
	stats      *observability.EngineStats
	graceTicks int
	tickEvery  time.Duration
	grace      *gracePeriod
	log        *slog.Logger
}

func NewRoomWorker(
	room domain.RoomID,
	commands chan domain.Command,
	repository contract.ICountRepository,
	notifier contract.INotifier,
	events chan<- event.DomainEvent,
	stats *observability.EngineStats,
	graceTicks int,
	tickEvery time.Duration,
	log *slog.Logger,
) *RoomWorker {
	return &RoomWorker{
		room:       room,
		commands:   commands,
		repository: repository,
		notifier:   notifier,
		events:     events,
		stats:      stats,
		graceTicks: graceTicks,
		tickEvery:  tickEvery,
		log:        log.With("room", room),
	}
}

func (w *RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			if w.grace != nil {
				w.grace.cancel()
				w.grace = nil
			}
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.handle(ctx, cmd)
		}
	}
}

func (w *RoomWorker) handle(ctx context.Context, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.SubmitCommand:
		w.stats.IncrProcessed()
		outcome := w.safeEvaluate(ctx, c.Message)
		switch outcome {
		case domain.OutcomeAccepted:
			w.stats.IncrAccepted()
		case domain.OutcomeIgnored:
			w.stats.IncrIgnored()
		}
		if c.Reply != nil {
			select {
			case c.Reply <- outcome:
			default:
				w.log.Warn("Reply channel full, dropping outcome", "outcome", outcome)
			}
		}
	case domain.GraceTickCommand:
		if w.grace != nil && w.grace.id == c.Window {
			w.notifier.RenderCountdown(ctx, w.room, c.Remaining, w.grace.expected)
		}
	case domain.GraceExpireCommand:
		// A command from a resolved or superseded window carries a stale
		// handle and must be a no-op.
		if w.grace != nil && w.grace.id == c.Window {
			w.expire(ctx)
		}
	}
}

// safeEvaluate is the outermost boundary for one message: an unexpected
// fault is logged with its context and the message is treated as ignored
// instead of killing the room's processing.
func (w *RoomWorker) safeEvaluate(ctx context.Context, msg domain.Message) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Recovered while processing message",
				"contributor", msg.Author, "stage", "evaluate", "panic", r)
			outcome = domain.OutcomeIgnored
		}
	}()
	return w.evaluate(ctx, msg)
}

// evaluate applies the normal counting rules, or routes the message to the
// correction path while a grace window is open.
func (w *RoomWorker) evaluate(ctx context.Context, msg domain.Message) domain.Outcome {
	if w.grace != nil {
		return w.tryCorrect(ctx, msg)
	}

	// Platform-generated tokens carry digit runs that must never be read
	// as counts.
	if extract.HasSigilPrefix(msg.Content) {
		return domain.OutcomeIgnored
	}
	number, found := extract.LeadingInteger(msg.Content)
	if !found {
		return domain.OutcomeIgnored
	}

	current, err := w.repository.GetCurrentCount(ctx, w.room)
	if err != nil {
		w.stats.IncrStoreFailures()
		w.log.Error("Failed to read current count", "contributor", msg.Author, "error", err)
		return domain.OutcomeFailed
	}
	last, hasLast, err := w.repository.GetLastContributor(ctx, w.room)
	if err != nil {
		w.stats.IncrStoreFailures()
		w.log.Error("Failed to read last contributor", "contributor", msg.Author, "error", err)
		return domain.OutcomeFailed
	}

	// A participant may never follow themself. This check wins over
	// correctness: a wrong number from the repeat contributor opens nothing.
	if hasLast && last == msg.Author {
		return domain.OutcomeIgnored
	}

	expected := current + 1
	if number != expected {
		w.openGrace(ctx, expected, msg.Author)
		return domain.OutcomeRecovering
	}

	if _, err = w.repository.Increment(ctx, w.room, msg.Author); err != nil {
		w.stats.IncrStoreFailures()
		w.log.Error("Failed to increment count", "contributor", msg.Author, "error", err)
		return domain.OutcomeFailed
	}
	w.emit(event.CountAccepted{Room: w.room, Contributor: msg.Author, Value: expected, At: time.Now().UTC()})
	return domain.OutcomeAccepted
}

// openGrace starts a recovery window. A still-unresolved predecessor is
// forfeited first: it expires immediately, reset included.
func (w *RoomWorker) openGrace(ctx context.Context, expected int64, excluded string) {
	if w.grace != nil {
		w.expire(ctx)
	}

	countdownCtx, cancel := context.WithCancel(ctx)
	grace := &gracePeriod{
		id:       uuid.New(),
		expected: expected,
		excluded: excluded,
		cancel:   cancel,
	}
	w.grace = grace
	w.stats.IncrGracesOpened()
	w.log.Info("Grace period opened", "expected", expected, "excluded", excluded)

	w.notifier.RenderCountdown(ctx, w.room, w.graceTicks, expected)
	w.emit(event.GraceOpened{
		Room: w.room, Window: grace.id, Expected: expected,
		Excluded: excluded, At: time.Now().UTC(),
	})

	go w.countdown(countdownCtx, grace.id)
}

// countdown posts one tick per interval back into the room's command
// channel, then the expiry. Cancellation is observed at every tick
// boundary; a cancelled countdown never posts again, and a tick already
// in flight is discarded by the worker through the window handle.
func (w *RoomWorker) countdown(ctx context.Context, window uuid.UUID) {
	ticker := time.NewTicker(w.tickEvery)
	defer ticker.Stop()

	for remaining := w.graceTicks - 1; remaining >= 0; remaining-- {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var cmd domain.Command
		if remaining > 0 {
			cmd = domain.GraceTickCommand{Room: w.room, Window: window, Remaining: remaining}
		} else {
			cmd = domain.GraceExpireCommand{Room: w.room, Window: window}
		}
		select {
		case <-ctx.Done():
			return
		case w.commands <- cmd:
		}
	}
}

// tryCorrect handles a message arriving while the window is open. Every
// rejection is silent: the window stays live and the countdown keeps
// running.
func (w *RoomWorker) tryCorrect(ctx context.Context, msg domain.Message) domain.Outcome {
	grace := w.grace
	if msg.Author == grace.excluded {
		return domain.OutcomeIgnored
	}
	if extract.HasSigilPrefix(msg.Content) {
		return domain.OutcomeIgnored
	}
	number, found := extract.LeadingInteger(msg.Content)
	if !found || number != grace.expected {
		return domain.OutcomeIgnored
	}

	if _, err := w.repository.Increment(ctx, w.room, msg.Author); err != nil {
		// The window stays live so the deadline can still expire it.
		w.stats.IncrStoreFailures()
		w.log.Error("Failed to persist correction", "contributor", msg.Author, "error", err)
		return domain.OutcomeFailed
	}

	grace.cancel()
	w.grace = nil
	w.stats.IncrGracesSaved()
	w.log.Info("Grace period saved", "contributor", msg.Author, "value", grace.expected)

	w.notifier.RenderSaved(ctx, w.room, msg.Author, grace.expected)
	w.emit(event.GraceSaved{Room: w.room, Contributor: msg.Author, Value: grace.expected, At: time.Now().UTC()})
	return domain.OutcomeAccepted
}

// expire resolves the live window as failed: the count resets and the
// window is removed in the same transition.
func (w *RoomWorker) expire(ctx context.Context) {
	grace := w.grace
	grace.cancel()
	w.grace = nil

	if err := w.repository.Reset(ctx, w.room); err != nil {
		// Deadline already passed; the window cannot stay live.
		w.stats.IncrStoreFailures()
		w.log.Error("Failed to reset count on expiry", "error", err)
	}
	w.stats.IncrGracesExpired()
	w.log.Info("Grace period expired", "expected", grace.expected)

	w.notifier.RenderFailed(ctx, w.room, grace.expected)
	w.emit(event.GraceExpired{Room: w.room, Expected: grace.expected, At: time.Now().UTC()})
}

// emit is best-effort: observers must never stall the room.
func (w *RoomWorker) emit(e event.DomainEvent) {
	select {
	case w.events <- e:
	default:
		w.log.Debug("Event channel full, dropping event")
	}
}
