package model

import (
	"fmt"
	"time"
)

// TotalDays is the fixed length of the challenge.
const TotalDays = 75

// Habit identifies one of the five fixed daily tasks.
type Habit string

const (
	HabitDiet    Habit = "diet"
	HabitWater   Habit = "water"
	HabitBook    Habit = "book"
	HabitWorkout Habit = "workout"
	HabitPic     Habit = "pic"
)

// AllHabits lists every habit in display order.
var AllHabits = []Habit{HabitDiet, HabitWater, HabitBook, HabitWorkout, HabitPic}

// ParseHabit converts a string into a Habit.
func ParseHabit(s string) (Habit, error) {
	switch Habit(s) {
	case HabitDiet, HabitWater, HabitBook, HabitWorkout, HabitPic:
		return Habit(s), nil
	default:
		return "", fmt.Errorf("unknown habit %q", s)
	}
}

// DayRecord holds the completion flags for one day. Every habit key is
// always present in the serialized form.
type DayRecord struct {
	Diet    bool `json:"diet"`
	Water   bool `json:"water"`
	Book    bool `json:"book"`
	Workout bool `json:"workout"`
	Pic     bool `json:"pic"`
}

// Done reports whether the given habit is completed.
func (r DayRecord) Done(h Habit) bool {
	switch h {
	case HabitDiet:
		return r.Diet
	case HabitWater:
		return r.Water
	case HabitBook:
		return r.Book
	case HabitWorkout:
		return r.Workout
	case HabitPic:
		return r.Pic
	}
	return false
}

// SetDone sets the completion flag for the given habit.
func (r *DayRecord) SetDone(h Habit, done bool) {
	switch h {
	case HabitDiet:
		r.Diet = done
	case HabitWater:
		r.Water = done
	case HabitBook:
		r.Book = done
	case HabitWorkout:
		r.Workout = done
	case HabitPic:
		r.Pic = done
	}
}

// State maps a day number (1..TotalDays) to its record. A well-formed
// state has exactly TotalDays entries and nothing outside that range;
// the JSON form uses the day number as the object key ("1".."75").
type State map[int]DayRecord

// NewState returns a state with every day present and every flag false.
func NewState() State {
	s := make(State, TotalDays)
	for day := 1; day <= TotalDays; day++ {
		s[day] = DayRecord{}
	}
	return s
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for day, rec := range s {
		out[day] = rec
	}
	return out
}

// Normalize forces the state back into well-formed shape: days missing
// from the map are filled in empty, days outside 1..TotalDays are
// dropped. Used after deserializing untrusted persisted data.
func (s State) Normalize() State {
	out := NewState()
	for day, rec := range s {
		if day >= 1 && day <= TotalDays {
			out[day] = rec
		}
	}
	return out
}

// JournalEntryKind distinguishes journal entry types.
type JournalEntryKind string

const (
	JournalToggle JournalEntryKind = "toggle"
	JournalReset  JournalEntryKind = "reset"
)

// JournalEntry records a single mutation for the activity log.
type JournalEntry struct {
	ID        string           `json:"id"`
	Kind      JournalEntryKind `json:"kind"`
	Day       int              `json:"day,omitempty"`
	Habit     Habit            `json:"habit,omitempty"`
	Done      bool             `json:"done"`
	Timestamp time.Time        `json:"timestamp"`
}
