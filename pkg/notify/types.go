package notify

import "context"

// Event describes a progress milestone being reached. Day and Habit
// identify the toggle that pushed progress over the threshold.
type Event struct {
	MilestonePct int    `json:"milestone_pct"`
	ProgressPct  int    `json:"progress_pct"`
	Day          int    `json:"day"`
	Habit        string `json:"habit"`
	Message      string `json:"message"`
}

// Notifier delivers milestone events to external systems.
type Notifier interface {
	// Name returns the notifier identifier.
	Name() string

	// Send delivers an event. Implementations must be safe for concurrent use.
	Send(ctx context.Context, event Event) error
}
