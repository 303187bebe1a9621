package tracker

import "github.com/soft-challenge/soft75/pkg/model"

// Re-export types from model package for convenience.
type (
	Habit        = model.Habit
	DayRecord    = model.DayRecord
	State        = model.State
	JournalEntry = model.JournalEntry
)

// AllHabits mirrors model.AllHabits.
var AllHabits = model.AllHabits

// Re-export constants.
const (
	TotalDays = model.TotalDays

	HabitDiet    = model.HabitDiet
	HabitWater   = model.HabitWater
	HabitBook    = model.HabitBook
	HabitWorkout = model.HabitWorkout
	HabitPic     = model.HabitPic
)
