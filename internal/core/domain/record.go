package domain

import "time"

// RunRecord captures one completed (or spawn-failed) run for the history
// store. It holds no per-line output, only the final outcome.
type RunRecord struct {
	Target    string        `json:"target"`
	Args      []string      `json:"args,omitzero"`
	Outcome   ExitOutcome   `json:"outcome"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration,omitzero"`
}
