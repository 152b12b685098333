package spread

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Progress is a point-in-time view of a render pass.
type Progress struct {
	// Total is the number of areas in the pass.
	Total int
	// Claimed areas have been handed to a worker (including those still computing).
	Claimed int
	// Committed areas have been painted.
	Committed int
	// Failed areas returned a compute error.
	Failed int
}

// Handle controls one render pass. It is safe for concurrent use.
//
// A Handle is returned by Render and RenderStream and never reused: every pass
// gets its own boundaries, visitation order, cursor and cancellation flag.
type Handle struct {
	// noCopy prevents accidental copying of the handle.
	//go:nocopy
	nc noCopy

	total  int
	cursor *cursor
	logger Logger

	cancelled atomic.Bool
	committed atomic.Int64
	failed    atomic.Int64

	// commitMu serializes paint calls and orders them against the cancellation check.
	commitMu sync.Mutex

	errsMu sync.Mutex
	errs   []error

	cycles sync.WaitGroup
	done   chan struct{}
	err    error
}

// noCopy is a vet-recognized marker to discourage copying types with this field embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func newHandle(total int, logger Logger) *Handle {
	return &Handle{
		total:  total,
		cursor: newCursor(total),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Abort stops the pass. No paint call starts after Abort returns, and
// workers stop claiming areas; compute calls already in flight are left to
// finish and their results are dropped. Abort is idempotent, may be called
// from any goroutine (including from inside the paint callback) and is not
// reported as an error.
func (h *Handle) Abort() {
	if h.cancelled.CompareAndSwap(false, true) {
		h.logger.Info("render aborted", "claimed", h.cursor.claimed(), "committed", h.committed.Load())
	}
}

// Aborted reports whether Abort was called or the render context was cancelled.
func (h *Handle) Aborted() bool { return h.cancelled.Load() }

// Done returns a channel closed once every worker cycle has terminated.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Err returns the compute failures of a finished pass joined with errors.Join.
// It returns nil while the pass is still running.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until the pass finishes or ctx is done.
// It returns Err() on completion and ctx.Err() if ctx ends first; in the latter
// case the pass keeps running.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Progress returns a snapshot of the pass counters.
func (h *Handle) Progress() Progress {
	return Progress{
		Total:     h.total,
		Claimed:   h.cursor.claimed(),
		Committed: int(h.committed.Load()),
		Failed:    int(h.failed.Load()),
	}
}

// commit runs paint unless the pass was aborted. It reports whether paint ran.
func (h *Handle) commit(paint func()) bool {
	h.commitMu.Lock()
	defer h.commitMu.Unlock()

	if h.cancelled.Load() {
		return false
	}
	paint()
	h.committed.Add(1)
	return true
}

func (h *Handle) recordError(err error) {
	h.failed.Add(1)
	h.errsMu.Lock()
	h.errs = append(h.errs, err)
	h.errsMu.Unlock()
}

// watch turns cancellation of ctx into Abort for as long as the pass runs.
func (h *Handle) watch(ctx context.Context) {
	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			h.Abort()
		case <-h.done:
		}
	}()
}

// finish waits for all cycles, then publishes the result in a fixed order:
// 1) join recorded errors
// 2) close done
// 3) run onDone (e.g. close a regions channel), so readers of it already see Err
func (h *Handle) finish(onDone func()) {
	h.cycles.Wait()

	h.errsMu.Lock()
	h.err = errors.Join(h.errs...)
	h.errsMu.Unlock()

	p := h.Progress()
	h.logger.Info("render finished",
		"total", p.Total, "committed", p.Committed, "failed", p.Failed, "aborted", h.Aborted())

	close(h.done)
	if onDone != nil {
		onDone()
	}
}
