package service

import (
	"context"
	"sync"
)

// ExportedRunningGuard is an exported alias so _test packages can test the guard.
type ExportedRunningGuard = runGuard

// ─────────────────────────────────────────────────────────────
// runGuard: one in-flight run per job name
// ─────────────────────────────────────────────────────────────

// runGuard refuses to start a job while a previous run of the same job is
// still in flight, and lets shutdown wait for in-flight runs.
type runGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
	wg      sync.WaitGroup
}

// TryLock marks job as running. It reports false if it already is.
func (g *runGuard) TryLock(job string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running == nil {
		g.running = make(map[string]struct{})
	}
	if _, busy := g.running[job]; busy {
		return false
	}
	g.running[job] = struct{}{}
	g.wg.Add(1)
	return true
}

// Unlock releases job. Must follow a successful TryLock.
func (g *runGuard) Unlock(job string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.running, job)
	g.wg.Done()
}

// Running reports whether job is in flight.
func (g *runGuard) Running(job string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.running[job]
	return busy
}

// WaitAll blocks until no job is running or ctx is done.
func (g *runGuard) WaitAll(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}
