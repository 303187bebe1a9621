package tracker

import (
	"fmt"

	"github.com/soft-challenge/soft75/pkg/model"
)

// PicPolicy decides on which days the progress-photo habit may be
// toggled and counts toward the completion percentage. The policies are
// mutually exclusive product variants; the default is Milestone.
type PicPolicy interface {
	// Name returns the policy identifier used in configuration.
	Name() string

	// Eligible reports whether the pic habit counts on the given day.
	Eligible(day int) bool
}

// Unrestricted counts the pic habit on every day.
type Unrestricted struct{}

func (Unrestricted) Name() string      { return "unrestricted" }
func (Unrestricted) Eligible(int) bool { return true }

// Milestone restricts the pic habit to every tenth day plus the final day.
type Milestone struct{}

func (Milestone) Name() string { return "milestone" }

func (Milestone) Eligible(day int) bool {
	return day%10 == 0 || day == model.TotalDays
}

// Soft counts the pic habit every day but visually emphasizes every
// fifth day. The emphasis is presentational; it does not change the
// progress denominator.
type Soft struct{}

func (Soft) Name() string      { return "soft" }
func (Soft) Eligible(int) bool { return true }

// Emphasized reports whether the day gets the visual photo reminder.
func (Soft) Emphasized(day int) bool { return day%5 == 0 }

// PolicyFromName resolves a configured policy name.
func PolicyFromName(name string) (PicPolicy, error) {
	switch name {
	case "", "milestone":
		return Milestone{}, nil
	case "unrestricted":
		return Unrestricted{}, nil
	case "soft":
		return Soft{}, nil
	default:
		return nil, fmt.Errorf("unknown pic policy %q", name)
	}
}

// EligibleDays counts the days on which the pic habit is counted.
func EligibleDays(policy PicPolicy) int {
	n := 0
	for day := 1; day <= model.TotalDays; day++ {
		if policy.Eligible(day) {
			n++
		}
	}
	return n
}
