package tracker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/soft-challenge/soft75/pkg/model"
	"github.com/soft-challenge/soft75/pkg/storage"
)

// Fixed store keys. Each write fully replaces the prior value, so
// last-writer-wins is correct with a single interactive session.
const (
	stateKey     = "tracker:days"
	startDateKey = "tracker:start_date"
	hiddenKey    = "tracker:hidden"
)

// Tracker is the challenge state engine. It owns the per-day habit
// flags, the informational start date, and the hidden-day set, and it
// persists all three through the injected store.
//
// Persistence is best-effort by design: a store that cannot be read
// degrades to the empty state, and write failures are logged and
// dropped. Habit tracking must keep working with a broken store.
//
// A mutex guards the in-memory maps: the HTTP API serves each request
// on its own goroutine, so the single-writer assumption that holds for
// the CLI does not hold there.
type Tracker struct {
	store      storage.Store
	journal    storage.Journal
	policy     PicPolicy
	milestones *MilestoneNotifier
	logger     *slog.Logger

	mu        sync.Mutex
	state     model.State
	hidden    map[int]struct{}
	startDate string
}

// NewTracker creates a tracker with the given dependencies. journal and
// milestones may be nil. Call Load to hydrate persisted state.
func NewTracker(store storage.Store, policy PicPolicy, journal storage.Journal, milestones *MilestoneNotifier, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:      store,
		journal:    journal,
		policy:     policy,
		milestones: milestones,
		logger:     logger,
		state:      model.NewState(),
		hidden:     make(map[int]struct{}),
	}
}

// Load hydrates the tracker from the store. A missing key, a read
// failure, or a malformed blob all degrade silently to the empty state;
// Load never fails.
func (t *Tracker) Load(ctx context.Context) {
	state := t.loadState(ctx)
	hidden := t.loadHidden(ctx)

	var startDate string
	value, ok, err := t.store.Get(ctx, startDateKey)
	if err != nil {
		t.logger.Warn("load start date failed", "error", err)
	} else if ok {
		startDate = value
	}

	t.mu.Lock()
	t.state = state
	t.hidden = hidden
	t.startDate = startDate
	t.mu.Unlock()
}

func (t *Tracker) loadState(ctx context.Context) model.State {
	value, ok, err := t.store.Get(ctx, stateKey)
	if err != nil {
		t.logger.Warn("load state failed, starting empty", "error", err)
		return model.NewState()
	}
	if !ok {
		return model.NewState()
	}

	var state model.State
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		t.logger.Warn("persisted state malformed, starting empty", "error", err)
		return model.NewState()
	}
	return state.Normalize()
}

func (t *Tracker) loadHidden(ctx context.Context) map[int]struct{} {
	hidden := make(map[int]struct{})

	value, ok, err := t.store.Get(ctx, hiddenKey)
	if err != nil {
		t.logger.Warn("load hidden days failed", "error", err)
		return hidden
	}
	if !ok {
		return hidden
	}

	var days []int
	if err := json.Unmarshal([]byte(value), &days); err != nil {
		t.logger.Warn("persisted hidden set malformed, ignoring", "error", err)
		return hidden
	}
	for _, day := range days {
		if day >= 1 && day <= model.TotalDays {
			hidden[day] = struct{}{}
		}
	}
	return hidden
}

// State returns a copy of the current state.
func (t *Tracker) State() model.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// Day returns the record for one day. ok is false outside 1..TotalDays.
func (t *Tracker) Day(day int) (model.DayRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.state[day]
	return rec, ok
}

// Policy returns the active pic eligibility policy.
func (t *Tracker) Policy() PicPolicy {
	return t.policy
}

// Progress returns the current completion percentage.
func (t *Tracker) Progress() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ComputeProgress(t.state, t.policy)
}

// Toggle flips the completion flag at [day][habit] and persists the
// result. It reports whether anything changed: days outside 1..TotalDays
// and pic toggles on ineligible days are no-ops, not errors.
func (t *Tracker) Toggle(ctx context.Context, day int, habit model.Habit) bool {
	t.mu.Lock()
	rec, ok := t.state[day]
	if !ok {
		t.mu.Unlock()
		return false
	}
	if habit == model.HabitPic && !t.policy.Eligible(day) {
		t.mu.Unlock()
		return false
	}

	before := ComputeProgress(t.state, t.policy)

	done := !rec.Done(habit)
	rec.SetDone(habit, done)
	t.state[day] = rec

	t.save(ctx)
	after := ComputeProgress(t.state, t.policy)
	t.mu.Unlock()

	t.appendJournal(ctx, &model.JournalEntry{
		Kind:  model.JournalToggle,
		Day:   day,
		Habit: habit,
		Done:  done,
	})
	t.logger.Info("habit toggled", "day", day, "habit", habit, "done", done, "progress_pct", after)

	if t.milestones != nil {
		t.milestones.ProgressChanged(ctx, before, after, day, habit)
	}
	return true
}

// Reset discards all habit flags and the hidden-day set. The start date
// is kept. Callers are responsible for gating this behind an explicit
// user confirmation.
func (t *Tracker) Reset(ctx context.Context) {
	t.mu.Lock()
	t.state = model.NewState()
	t.hidden = make(map[int]struct{})
	t.save(ctx)
	t.saveHidden(ctx)
	t.mu.Unlock()

	t.appendJournal(ctx, &model.JournalEntry{Kind: model.JournalReset})
	t.logger.Info("tracker reset")
}

// StartDate returns the stored start date, or "" when unset.
func (t *Tracker) StartDate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startDate
}

// SetStartDate stores the challenge start date. The date is purely
// informational; it takes part in no computation. An empty string
// clears it.
func (t *Tracker) SetStartDate(ctx context.Context, date string) error {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.startDate = date
	if err := t.store.Set(ctx, startDateKey, date); err != nil {
		t.logger.Warn("save start date failed", "error", err)
	}
	return nil
}

// HideDay marks a day as hidden from presentation. Hiding does not
// touch habit flags or progress. Reports whether the set changed.
func (t *Tracker) HideDay(ctx context.Context, day int) bool {
	if day < 1 || day > model.TotalDays {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, hidden := t.hidden[day]; hidden {
		return false
	}
	t.hidden[day] = struct{}{}
	t.saveHidden(ctx)
	return true
}

// UnhideDay removes a day from the hidden set.
func (t *Tracker) UnhideDay(ctx context.Context, day int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, hidden := t.hidden[day]; !hidden {
		return false
	}
	delete(t.hidden, day)
	t.saveHidden(ctx)
	return true
}

// IsHidden reports whether a day is hidden.
func (t *Tracker) IsHidden(day int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, hidden := t.hidden[day]
	return hidden
}

// HiddenDays returns the hidden day numbers in ascending order.
func (t *Tracker) HiddenDays() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hiddenDaysLocked()
}

// hiddenDaysLocked assumes t.mu is held.
func (t *Tracker) hiddenDaysLocked() []int {
	days := make([]int, 0, len(t.hidden))
	for day := range t.hidden {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// save writes the full state; it assumes t.mu is held. The error is
// deliberately discarded after logging: a failed write must not
// interrupt the user.
func (t *Tracker) save(ctx context.Context) {
	data, err := json.Marshal(t.state)
	if err != nil {
		t.logger.Warn("marshal state failed", "error", err)
		return
	}
	if err := t.store.Set(ctx, stateKey, string(data)); err != nil {
		t.logger.Warn("save state failed", "error", err)
	}
}

// saveHidden assumes t.mu is held.
func (t *Tracker) saveHidden(ctx context.Context) {
	data, err := json.Marshal(t.hiddenDaysLocked())
	if err != nil {
		t.logger.Warn("marshal hidden set failed", "error", err)
		return
	}
	if err := t.store.Set(ctx, hiddenKey, string(data)); err != nil {
		t.logger.Warn("save hidden set failed", "error", err)
	}
}

func (t *Tracker) appendJournal(ctx context.Context, entry *model.JournalEntry) {
	if t.journal == nil {
		return
	}
	if err := t.journal.Append(ctx, entry); err != nil {
		t.logger.Warn("append journal entry failed", "error", err)
	}
}

// Journal returns recent journal entries, newest first. Returns nil
// when no journal is configured.
func (t *Tracker) Journal(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	if t.journal == nil {
		return nil, nil
	}
	return t.journal.Recent(ctx, limit)
}
