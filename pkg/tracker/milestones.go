package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/soft-challenge/soft75/pkg/notify"
)

// milestoneThresholds are the progress percentages worth celebrating.
var milestoneThresholds = []int{25, 50, 75, 100}

// MilestoneNotifier dispatches events when the completion percentage
// crosses a threshold. Delivery is best-effort: failures are logged and
// otherwise ignored, matching the persistence policy.
type MilestoneNotifier struct {
	notifiers []notify.Notifier
	logger    *slog.Logger
}

// NewMilestoneNotifier creates a milestone notifier.
func NewMilestoneNotifier(notifiers []notify.Notifier, logger *slog.Logger) *MilestoneNotifier {
	return &MilestoneNotifier{
		notifiers: notifiers,
		logger:    logger,
	}
}

// ProgressChanged compares the percentage before and after a toggle and
// dispatches one event per threshold crossed upward. day and habit
// identify the toggle that caused the crossing.
func (m *MilestoneNotifier) ProgressChanged(ctx context.Context, before, after, day int, habit Habit) {
	if after <= before || len(m.notifiers) == 0 {
		return
	}

	for _, threshold := range milestoneThresholds {
		if before >= threshold || after < threshold {
			continue
		}

		event := notify.Event{
			MilestonePct: threshold,
			ProgressPct:  after,
			Day:          day,
			Habit:        string(habit),
			Message:      fmt.Sprintf("Day %d %s pushed progress past %d%% (now at %d%%)", day, habit, threshold, after),
		}

		m.logger.Info("milestone reached", "milestone_pct", threshold, "progress_pct", after, "day", day, "habit", habit)

		for _, notifier := range m.notifiers {
			if err := notifier.Send(ctx, event); err != nil {
				m.logger.Error("send milestone event failed",
					"notifier", notifier.Name(),
					"milestone_pct", threshold,
					"error", err,
				)
			}
		}
	}
}
