package tracker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soft-challenge/soft75/pkg/model"
	"github.com/soft-challenge/soft75/pkg/tracker"
)

func TestComputeProgress_Empty(t *testing.T) {
	for _, policy := range []tracker.PicPolicy{tracker.Unrestricted{}, tracker.Milestone{}, tracker.Soft{}} {
		assert.Equal(t, 0, tracker.ComputeProgress(model.NewState(), policy), policy.Name())
	}
}

func TestComputeProgress_AllDone(t *testing.T) {
	for _, policy := range []tracker.PicPolicy{tracker.Unrestricted{}, tracker.Milestone{}, tracker.Soft{}} {
		state := model.NewState()
		for day := 1; day <= model.TotalDays; day++ {
			rec := state[day]
			for _, h := range model.AllHabits {
				if h == model.HabitPic && !policy.Eligible(day) {
					continue
				}
				rec.SetDone(h, true)
			}
			state[day] = rec
		}
		assert.Equal(t, 100, tracker.ComputeProgress(state, policy), policy.Name())
	}
}

func TestComputeProgress_TwoFlagsUnrestricted(t *testing.T) {
	// Denominator 375: round(100*2/375) = 1.
	tr, _ := newTestTracker(t, tracker.Unrestricted{})
	ctx := context.Background()

	tr.Toggle(ctx, 1, model.HabitDiet)
	tr.Toggle(ctx, 1, model.HabitWater)

	assert.Equal(t, 1, tr.Progress())
}

func TestComputeProgress_OnePicMilestone(t *testing.T) {
	// Denominator 308 (8 eligible pic days): round(100*1/308) = 0.
	tr, _ := newTestTracker(t, tracker.Milestone{})
	ctx := context.Background()

	tr.Toggle(ctx, 75, model.HabitPic)

	assert.Equal(t, 0, tr.Progress())
}

func TestComputeProgress_IneligiblePicFlagsIgnored(t *testing.T) {
	// A true pic flag on a non-milestone day (e.g. hydrated from a blob
	// written under another policy) contributes nothing.
	state := model.NewState()
	rec := state[11]
	rec.SetDone(model.HabitPic, true)
	state[11] = rec

	assert.Equal(t, 0, tracker.ComputeProgress(state, tracker.Milestone{}))
	assert.Equal(t, 0, tracker.ComputeProgress(model.NewState(), tracker.Milestone{}))
}

func TestComputeProgress_RoundsHalfUp(t *testing.T) {
	// 15/300 non-pic slots under milestone: 100*15/308 = 4.87 -> 5.
	state := model.NewState()
	for day := 1; day <= 15; day++ {
		rec := state[day]
		rec.SetDone(model.HabitDiet, true)
		state[day] = rec
	}
	assert.Equal(t, 5, tracker.ComputeProgress(state, tracker.Milestone{}))

	// 100*154/308 = exactly 50.
	done := 0
	state = model.NewState()
	for day := 1; day <= model.TotalDays && done < 154; day++ {
		rec := state[day]
		for _, h := range []model.Habit{model.HabitDiet, model.HabitWater, model.HabitBook, model.HabitWorkout} {
			if done < 154 {
				rec.SetDone(h, true)
				done++
			}
		}
		state[day] = rec
	}
	assert.Equal(t, 50, tracker.ComputeProgress(state, tracker.Milestone{}))
}

func TestComputeProgress_Stable(t *testing.T) {
	state := model.NewState()
	rec := state[20]
	rec.SetDone(model.HabitBook, true)
	state[20] = rec

	first := tracker.ComputeProgress(state, tracker.Milestone{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, tracker.ComputeProgress(state, tracker.Milestone{}))
	}
}
