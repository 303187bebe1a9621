package tracker

import "github.com/soft-challenge/soft75/pkg/model"

// ComputeProgress returns the completion percentage for a state under
// the given pic policy, rounded half-up to the nearest integer.
//
// The denominator is one slot per day for each of the four non-pic
// habits, plus one slot per pic-eligible day. True pic flags on
// ineligible days are not counted.
func ComputeProgress(state model.State, policy PicPolicy) int {
	denominator := model.TotalDays*(len(model.AllHabits)-1) + EligibleDays(policy)
	if denominator == 0 {
		return 0
	}

	completed := 0
	for day := 1; day <= model.TotalDays; day++ {
		rec := state[day]
		for _, h := range model.AllHabits {
			if h == model.HabitPic && !policy.Eligible(day) {
				continue
			}
			if rec.Done(h) {
				completed++
			}
		}
	}

	// round(100*completed/denominator) without going through floats
	return (200*completed + denominator) / (2 * denominator)
}
