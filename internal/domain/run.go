package domain

import "time"

// RunStatus is the outcome of a pipeline run.
type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunLog is one entry of the pipeline run history.
type RunLog struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Status     RunStatus `json:"status"`
	Rows       int       `json:"rows"`
	Countries  int       `json:"countries"`
	Unresolved int       `json:"unresolved"`
	Error      string    `json:"error"`
	Trigger    string    `json:"trigger"` // manual, watch or schedule
}

// Duration is the wall time of the run.
func (l RunLog) Duration() time.Duration {
	return l.FinishedAt.Sub(l.StartedAt)
}
