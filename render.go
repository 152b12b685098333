package spread

import (
	"context"
	"fmt"
	"math"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/spread/pool"
)

// Render starts a render pass over a surface of params.Width x params.Height.
//
// The surface is split into Spread column areas (see WithSpread) which are
// visited in a random order by every worker of the pool concurrently; each
// worker computes one area at a time through the function registered for
// channel. Every finished area is handed to paint as soon as it is ready.
//
// Setup problems (empty pool, a worker without the channel, invalid options or
// a malformed partition) are returned immediately and no worker is called.
//
// Cancelling ctx has the same effect as Handle.Abort. The same ctx is passed to
// every compute call.
//
// A failing compute call ends only the cycle of the worker that produced it;
// the other workers continue and the failure is reported by Handle.Wait and
// Handle.Err. Use WithStopOnError to abort the whole pass instead.
func Render[B any](
	ctx context.Context,
	workers pool.Pool[Worker[B]],
	channel Channel,
	params Params,
	paint Paint[B],
	opts ...Option,
) (*Handle, error) {
	if paint == nil {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "paint callback is required"))
	}
	p, err := newPass(workers, channel, params, opts)
	if err != nil {
		return nil, err
	}
	p.paint = func(buf B, _ Area, from, to float64) { paint(buf, from, to) }
	p.start(ctx, nil)
	return p.handle, nil
}

// Run renders the whole surface and blocks until every worker is done.
// It returns the joined compute errors, or nil if all areas were painted or
// the pass was cancelled through ctx.
func Run[B any](
	ctx context.Context,
	workers pool.Pool[Worker[B]],
	channel Channel,
	params Params,
	paint Paint[B],
	opts ...Option,
) error {
	h, err := Render(ctx, workers, channel, params, paint, opts...)
	if err != nil {
		return err
	}
	<-h.Done()
	return h.Err()
}

// pass is the immutable geometry of one render plus its mutable handle.
type pass[B any] struct {
	cfg      config
	channel  Channel
	computes []Compute[B]
	params   Params

	renderWidth  float64
	renderHeight float64
	boundaries   []float64
	order        []int

	inst   instruments
	handle *Handle
	paint  func(buf B, a Area, from, to float64)
}

func newPass[B any](workers pool.Pool[Worker[B]], channel Channel, params Params, opts []Option) (*pass[B], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if workers == nil || workers.Len() == 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "worker pool is empty"))
	}
	computes := make([]Compute[B], workers.Len())
	for i := range computes {
		fn, ok := workers.Worker(i)[channel]
		if !ok || fn == nil {
			return nil, fmt.Errorf("%w: %w: worker %d, channel %q", ErrInvalidConfig, ErrMissingChannel, i, channel)
		}
		computes[i] = fn
	}

	if !validSize(params.Width) || !validSize(params.Height) {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "surface size must be finite and non-negative"))
	}
	renderWidth := params.Width * cfg.Scale
	renderHeight := params.Height * cfg.Scale

	boundaries, err := cfg.Partitioner(renderWidth, cfg.Spread)
	if err != nil {
		return nil, err
	}
	if err = validateBoundaries(boundaries, renderWidth, cfg.Spread); err != nil {
		return nil, err
	}

	return &pass[B]{
		cfg:          cfg,
		channel:      channel,
		computes:     computes,
		params:       params,
		renderWidth:  renderWidth,
		renderHeight: renderHeight,
		boundaries:   boundaries,
		order:        Permutation(cfg.Spread, cfg.Rand),
		inst:         newInstruments(cfg.Metrics),
		handle:       newHandle(cfg.Spread, cfg.Logger),
	}, nil
}

func validSize(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// start launches one cycle per worker and the goroutine that closes the handle.
func (p *pass[B]) start(ctx context.Context, onDone func()) {
	h := p.handle
	p.cfg.Logger.Info("render started",
		"channel", string(p.channel), "spread", p.cfg.Spread, "workers", len(p.computes), "scale", p.cfg.Scale)

	h.cycles.Add(len(p.computes))
	for i, fn := range p.computes {
		c := &cycle[B]{worker: i, compute: fn, pass: p}
		go func() {
			defer h.cycles.Done()
			if err := c.run(ctx); err != nil {
				h.recordError(err)
			}
		}()
	}

	h.watch(ctx)
	go h.finish(onDone)
}

// area resolves a permutation slot into the interval a worker computes.
func (p *pass[B]) area(slot int) Area {
	idx := p.order[slot]
	return Area{
		Index:   idx,
		Width:   p.renderWidth,
		Height:  p.renderHeight,
		From:    p.boundaries[idx],
		To:      p.boundaries[idx+1],
		Options: p.params.Options,
	}
}
