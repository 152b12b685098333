package spread

import (
	"context"
	"time"
)

// cycle drives a single worker: claim the next area, compute it, commit it,
// until the areas run out, the pass is aborted or the compute call fails.
// Exactly one compute call per cycle is in flight at any time.
type cycle[B any] struct {
	worker  int
	compute Compute[B]
	pass    *pass[B]
}

func (c *cycle[B]) run(ctx context.Context) error {
	p := c.pass
	h := p.handle
	for {
		if h.cancelled.Load() {
			return nil
		}
		slot, ok := h.cursor.claim()
		if !ok {
			return nil
		}
		a := p.area(slot)
		p.inst.claimed.Add(1)

		buf, err := c.execute(ctx, a)
		if err != nil {
			return c.fail(a, err)
		}

		from, to := a.From/p.cfg.Scale, a.To/p.cfg.Scale
		if !h.commit(func() { p.paint(buf, a, from, to) }) {
			p.inst.discarded.Add(1)
			p.cfg.Logger.Debug("area discarded after abort", "area", a.Index, "worker", c.worker)
			return nil
		}
		p.inst.committed.Add(1)
	}
}

func (c *cycle[B]) execute(ctx context.Context, a Area) (B, error) {
	inst := c.pass.inst
	inst.inflight.Add(1)
	defer inst.inflight.Add(-1)

	started := time.Now()
	buf, err := execCompute(ctx, c.compute, a)
	inst.duration.Record(time.Since(started).Seconds())
	return buf, err
}

func (c *cycle[B]) fail(a Area, err error) error {
	p := c.pass
	p.inst.errors.Add(1)
	p.cfg.Logger.Warn("compute failed", "area", a.Index, "worker", c.worker, "error", err)

	if p.cfg.ErrorTagging {
		err = newAreaTaggedError(err, a, c.worker)
	}
	if p.cfg.StopOnError {
		p.handle.Abort()
	}
	return err
}
