package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"econmap/internal/econ"
	"econmap/internal/logging"
)

// ErrAlreadyRunning is returned by RunOnce while another run is in flight.
var ErrAlreadyRunning = errors.New("pipeline is already running")

const (
	pipelineJob     = "pipeline"
	defaultDebounce = 500 * time.Millisecond
	runTimeout      = 10 * time.Minute
)

// Runner executes one pipeline run. *econ.Pipeline implements it.
type Runner interface {
	Run(ctx context.Context) (*econ.Result, error)
}

// RunSummary is the payload of pipeline events.
type RunSummary struct {
	RunID      string    `json:"runId"`
	Trigger    string    `json:"trigger"`
	StartedAt  time.Time `json:"startedAt"`
	Rows       int       `json:"rows"`
	Countries  int       `json:"countries"`
	Unresolved int       `json:"unresolved"`
	DurationMS int64     `json:"durationMs"`
	Error      string    `json:"error,omitempty"`
}

// Trigger names recorded in RunSummary.
const (
	TriggerManual   = "manual"
	TriggerWatch    = "watch"
	TriggerSchedule = "schedule"
)

// PipelineService runs the pipeline on demand, on input changes and on a
// cron schedule, never more than one run at a time.
type PipelineService struct {
	runner   Runner
	emitter  EventEmitter
	debounce time.Duration
	running  runGuard

	// watcher / cron lifecycle
	mu          sync.Mutex
	watchCancel context.CancelFunc
	watchDone   chan struct{}
	watcher     *fsnotify.Watcher
	cronSched   *cron.Cron
}

// NewPipelineService creates a PipelineService. A nil emitter logs events.
func NewPipelineService(runner Runner, emitter EventEmitter) *PipelineService {
	if emitter == nil {
		emitter = LogEmitter{}
	}
	return &PipelineService{
		runner:   runner,
		emitter:  emitter,
		debounce: defaultDebounce,
	}
}

// SetDebounce changes the quiet period applied to file events.
func (s *PipelineService) SetDebounce(d time.Duration) {
	if d > 0 {
		s.debounce = d
	}
}

// ── Run ────────────────────────────────────────────────────

// RunOnce executes the pipeline synchronously under a fresh run ID.
func (s *PipelineService) RunOnce(ctx context.Context) (*econ.Result, error) {
	return s.run(ctx, TriggerManual)
}

func (s *PipelineService) run(ctx context.Context, trigger string) (*econ.Result, error) {
	if !s.running.TryLock(pipelineJob) {
		return nil, ErrAlreadyRunning
	}
	defer s.running.Unlock(pipelineJob)

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	log := logging.FromContext(ctx)

	runCtx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	log.Info("pipeline started", "trigger", trigger)
	start := time.Now()
	res, err := s.runner.Run(runCtx)

	summary := RunSummary{
		RunID:      runID,
		Trigger:    trigger,
		StartedAt:  start,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		summary.Error = err.Error()
		log.Error("pipeline failed", "error", err, "duration", time.Since(start))
		s.emitter.Emit(ctx, EventPipelineFailed, summary)
		return nil, err
	}

	summary.Rows = res.Rows
	summary.Countries = res.Countries
	summary.Unresolved = len(res.Unresolved)
	log.Info("pipeline finished",
		"rows", res.Rows,
		"countries", res.Countries,
		"duration", time.Since(start),
	)
	s.emitter.Emit(ctx, EventPipelineCompleted, summary)
	return res, nil
}

// trigger runs the pipeline from a watcher or the scheduler. Overlaps are
// skipped rather than queued.
func (s *PipelineService) trigger(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	log := logging.FromContext(ctx)
	if _, err := s.run(ctx, reason); err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			log.Info("run skipped, previous run still in flight", "trigger", reason)
			return
		}
		log.Warn("triggered run failed", "trigger", reason, "error", err)
	}
}

// ── Triggers (cron + file watch) ──────────────────────────

// Watch re-runs the pipeline whenever one of paths is written or created,
// after the debounce period. The parent directories are watched so editors
// that replace files atomically are still seen. Watching stops with ctx or Stop.
func (s *PipelineService) Watch(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return errors.New("watch: no paths")
	}

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch: bad path %q: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch dir %q: %w", dir, err)
		}
	}

	s.mu.Lock()
	s.stopWatcherLocked()
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.watcher, s.watchCancel, s.watchDone = watcher, cancel, done
	s.mu.Unlock()

	go s.watchLoop(watchCtx, watcher, watched, done)

	logging.FromContext(ctx).Info("watching inputs", "files", len(watched))
	return nil
}

func (s *PipelineService) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, watched map[string]bool, done chan struct{}) {
	defer close(done)
	log := logging.FromContext(ctx)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			if !watched[absPath] {
				continue
			}
			// Both inputs feed one run, so a single timer covers them.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.debounce, func() {
				log.Info("input changed", "path", absPath)
				s.trigger(ctx, TriggerWatch)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", "error", err)
		}
	}
}

// Schedule runs the pipeline on a standard 5-field cron expression or a
// descriptor such as @daily.
func (s *PipelineService) Schedule(ctx context.Context, expr string) error {
	c := cron.New()
	if _, err := c.AddFunc(expr, func() { s.trigger(ctx, TriggerSchedule) }); err != nil {
		return fmt.Errorf("schedule %q: %w", expr, err)
	}

	s.mu.Lock()
	if s.cronSched != nil {
		s.cronSched.Stop()
	}
	s.cronSched = c
	s.mu.Unlock()

	c.Start()
	logging.FromContext(ctx).Info("pipeline scheduled", "expr", expr)
	return nil
}

// Running reports whether a run is in flight.
func (s *PipelineService) Running() bool {
	return s.running.Running(pipelineJob)
}

// WaitRunning blocks until the in-flight run finishes or ctx is cancelled.
// Used for graceful shutdown.
func (s *PipelineService) WaitRunning(ctx context.Context) {
	s.running.WaitAll(ctx)
}

// Stop tears down the watcher and the scheduler. Safe to call repeatedly.
func (s *PipelineService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopWatcherLocked()
	if s.cronSched != nil {
		s.cronSched.Stop()
		s.cronSched = nil
	}
}

func (s *PipelineService) stopWatcherLocked() {
	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
	if s.watchDone != nil {
		<-s.watchDone
		s.watchDone = nil
	}
}
