// internal/game/engine.go
//
// Session state machine for the daily puzzle.
// Responsibilities:
//   - Tie the persisted attempt history to the current calendar day.
//   - Reset the session exactly once when the day changes (rollover).
//   - Restore an in-progress day by replaying attempts against the target.
//   - Validate and apply guesses; conclude the session as won or lost.
//   - Update cumulative stats once per concluded session.
//
// Notes:
//   - All mutation funnels through Load, Rollover and Submit. A mutex
//     serialises them so HTTP handlers and the rollover timer never interleave.
//   - The target is never stored; it is recomputed from the day index.
//   - Status is never stored either; it is derived from attempts + target.
//   - Persistence faults are logged and treated as empty state.
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bossdle/internal/catalog"
	"github.com/robalobadob/bossdle/internal/daily"
)

// Persistence is the key/value boundary the engine reads and writes.
// Absent keys are a valid initial state (empty attempts, no day, zero stats).
type Persistence interface {
	LoadAttempts(ctx context.Context) ([]string, error)
	SaveAttempts(ctx context.Context, names []string) error
	LoadLastDay(ctx context.Context) (day int, ok bool, err error)
	SaveLastDay(ctx context.Context, day int) error
	LoadStats(ctx context.Context) (Stats, error)
	SaveStats(ctx context.Context, s Stats) error
}

// Engine holds the catalog, the current session and the cumulative stats.
type Engine struct {
	mu    sync.Mutex
	cat   *catalog.Catalog
	cal   *daily.Calendar
	store Persistence
	now   func() time.Time
	log   zerolog.Logger

	loaded   bool
	day      int
	target   catalog.Entry
	attempts []catalog.Entry
	status   Status
	stats    Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger overrides the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine constructs an engine. It fails if the catalog is empty, which is
// what keeps daily.Select's precondition satisfied. Call Load before use.
func NewEngine(cat *catalog.Catalog, cal *daily.Calendar, st Persistence, opts ...Option) (*Engine, error) {
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	e := &Engine{
		cat:    cat,
		cal:    cal,
		store:  st,
		now:    time.Now,
		log:    log.With().Str("component", "engine").Logger(),
		status: StatusInProgress,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Load reads persisted state. If the persisted day matches today the attempts
// are replayed; otherwise (or if nothing is persisted) a fresh session starts.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats, err := e.store.LoadStats(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("load stats")
		stats = Stats{}
	}
	e.stats = stats

	today := e.cal.DayIndex(e.now())
	last, ok, err := e.store.LoadLastDay(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("load last day")
		ok = false
	}
	if !ok || last != today {
		e.resetLocked(ctx, today)
	} else {
		e.restoreLocked(ctx, today)
	}
	e.loaded = true
}

// Rollover starts a new session if the calendar day changed since the current
// one began. It reports whether anything changed; repeated calls on the same
// day are no-ops.
func (e *Engine) Rollover(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rolloverLocked(ctx)
}

func (e *Engine) rolloverLocked(ctx context.Context) bool {
	today := e.cal.DayIndex(e.now())
	if e.loaded && today == e.day {
		return false
	}
	e.resetLocked(ctx, today)
	e.loaded = true
	return true
}

// resetLocked clears attempts for day and persists the new day marker.
func (e *Engine) resetLocked(ctx context.Context, day int) {
	e.day = day
	e.target = daily.Select(day, e.cat)
	e.attempts = nil
	e.status = StatusInProgress
	if err := e.store.SaveAttempts(ctx, []string{}); err != nil {
		e.log.Warn().Err(err).Msg("save attempts")
	}
	if err := e.store.SaveLastDay(ctx, day); err != nil {
		e.log.Warn().Err(err).Msg("save last day")
	}
	e.log.Info().Int("day", day).Msg("new daily session")
}

// restoreLocked replays persisted attempts for day. Unknown or repeated names
// are dropped and replay stops once the session concludes.
func (e *Engine) restoreLocked(ctx context.Context, day int) {
	e.day = day
	e.target = daily.Select(day, e.cat)
	e.attempts = nil

	names, err := e.store.LoadAttempts(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("load attempts")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		entry, ok := e.cat.Get(n)
		if !ok {
			entry, ok = e.cat.Lookup(n)
		}
		if !ok || seen[entry.Name] {
			e.log.Warn().Str("name", n).Msg("skipping unrestorable attempt")
			continue
		}
		seen[entry.Name] = true
		e.attempts = append(e.attempts, entry)
		if statusOf(e.attempts, e.target).Finished() {
			break
		}
	}
	e.status = statusOf(e.attempts, e.target)
	e.log.Info().Int("day", day).Int("attempts", len(e.attempts)).Str("status", string(e.status)).Msg("restored daily session")
}

// statusOf derives status purely from attempts and target.
func statusOf(attempts []catalog.Entry, target catalog.Entry) Status {
	for _, a := range attempts {
		if a.Name == target.Name {
			return StatusWon
		}
	}
	if len(attempts) >= MaxAttempts {
		return StatusLost
	}
	return StatusInProgress
}

// Submit resolves raw against the catalog and applies it as a guess.
//
// Rejections (ErrUnknownGuess, ErrDuplicateGuess) leave state untouched.
// Once the session is finished, Submit is a no-op returning Accepted=false
// and a nil error: reaching a terminal state is not a failure.
func (e *Engine) Submit(ctx context.Context, raw string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return Outcome{}, ErrNotLoaded
	}
	e.rolloverLocked(ctx)

	if e.status.Finished() {
		return e.outcomeLocked(nil, false), nil
	}

	entry, ok := e.cat.Lookup(raw)
	if !ok {
		return e.outcomeLocked(nil, false), fmt.Errorf("%w: %q", ErrUnknownGuess, strings.TrimSpace(raw))
	}
	for _, a := range e.attempts {
		if a.Name == entry.Name {
			return e.outcomeLocked(nil, false), fmt.Errorf("%w: %q", ErrDuplicateGuess, entry.Name)
		}
	}

	e.attempts = append(e.attempts, entry)
	if err := e.store.SaveAttempts(ctx, e.namesLocked()); err != nil {
		e.log.Warn().Err(err).Msg("save attempts")
	}
	row := EvaluateRow(entry, e.target)

	switch {
	case entry.Name == e.target.Name:
		e.status = StatusWon
		e.concludeLocked(ctx, true)
	case len(e.attempts) >= MaxAttempts:
		e.status = StatusLost
		e.concludeLocked(ctx, false)
	}

	e.log.Info().
		Int("day", e.day).
		Int("attempt", len(e.attempts)).
		Str("status", string(e.status)).
		Msg("guess accepted")
	return e.outcomeLocked(&row, true), nil
}

// concludeLocked bumps stats for a finished session.
func (e *Engine) concludeLocked(ctx context.Context, won bool) {
	e.stats.Played++
	if won {
		e.stats.Wins++
		e.stats.Streak++
	} else {
		e.stats.Streak = 0
	}
	if err := e.store.SaveStats(ctx, e.stats); err != nil {
		e.log.Warn().Err(err).Msg("save stats")
	}
	e.log.Info().Int("day", e.day).Bool("won", won).Int("streak", e.stats.Streak).Msg("session concluded")
}

func (e *Engine) outcomeLocked(row *Row, accepted bool) Outcome {
	o := Outcome{
		Accepted:  accepted,
		Row:       row,
		Status:    e.status,
		Remaining: MaxAttempts - len(e.attempts),
	}
	if e.status.Finished() {
		o.Answer = e.target.Name
	}
	return o
}

func (e *Engine) namesLocked() []string {
	out := make([]string, len(e.attempts))
	for i, a := range e.attempts {
		out[i] = a.Name
	}
	return out
}

// Snapshot returns the current session for display. It applies a pending
// rollover first so a view opened after midnight shows the new day.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		return Snapshot{}, ErrNotLoaded
	}
	e.rolloverLocked(ctx)

	now := e.now()
	next := e.cal.NextBoundary(now)
	s := Snapshot{
		Day:          e.day,
		Label:        Label(e.day),
		Date:         e.cal.DateKey(now),
		Status:       e.status,
		Rows:         e.rowsLocked(),
		Remaining:    MaxAttempts - len(e.attempts),
		Stats:        e.stats,
		NextRollover: next,
		SecondsLeft:  int64(next.Sub(now) / time.Second),
	}
	if e.status.Finished() {
		s.Answer = e.target.Name
	}
	return s, nil
}

func (e *Engine) rowsLocked() []Row {
	rows := make([]Row, len(e.attempts))
	for i, a := range e.attempts {
		rows[i] = EvaluateRow(a, e.target)
	}
	return rows
}

// Stats returns the cumulative counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Day returns the day index of the current session.
func (e *Engine) Day() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.day
}

// Share returns the share text for a finished session, or ErrInProgress.
func (e *Engine) Share() (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.status.Finished() {
		return Result{}, ErrInProgress
	}
	return newResult(e.day, e.status, e.rowsLocked()), nil
}
