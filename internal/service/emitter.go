package service

import (
	"context"
	"sync"
	"time"

	"econmap/internal/domain"
	"econmap/internal/logging"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter: decouples services from whoever consumes events
// ─────────────────────────────────────────────────────────────

// Event names emitted by PipelineService.
const (
	EventPipelineCompleted = "pipeline:completed"
	EventPipelineFailed    = "pipeline:failed"
)

// EventEmitter publishes service events. The CLI logs them; tests record them.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// LogEmitter writes every event as an info log entry.
type LogEmitter struct{}

func (LogEmitter) Emit(ctx context.Context, event string, data any) {
	logging.FromContext(ctx).Info("event", "name", event, "data", data)
}

// RunRecorder persists finished runs. *storage.RunStore implements it.
type RunRecorder interface {
	CreateRunLog(ctx context.Context, l *domain.RunLog) error
}

// HistoryEmitter records pipeline events in the run history and forwards
// every event to Next. A failed write is logged and does not fail the run.
type HistoryEmitter struct {
	Store RunRecorder
	Next  EventEmitter
}

func (h HistoryEmitter) Emit(ctx context.Context, event string, data any) {
	if summary, ok := data.(RunSummary); ok {
		if err := h.Store.CreateRunLog(ctx, summary.runLog(event)); err != nil {
			logging.FromContext(ctx).Warn("run history write failed", "error", err)
		}
	}
	if h.Next != nil {
		h.Next.Emit(ctx, event, data)
	}
}

func (s RunSummary) runLog(event string) *domain.RunLog {
	status := domain.RunStatusCompleted
	if event == EventPipelineFailed {
		status = domain.RunStatusFailed
	}
	return &domain.RunLog{
		ID:         s.RunID,
		StartedAt:  s.StartedAt,
		FinishedAt: s.StartedAt.Add(time.Duration(s.DurationMS) * time.Millisecond),
		Status:     status,
		Rows:       s.Rows,
		Countries:  s.Countries,
		Unresolved: s.Unresolved,
		Error:      s.Error,
		Trigger:    s.Trigger,
	}
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
type MockEmitter struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// Snapshot returns a copy of the recorded events.
func (m *MockEmitter) Snapshot() []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmittedEvent(nil), m.Events...)
}
