package spread

import (
	"context"

	"github.com/ygrebnov/spread/pool"
)

// Region is a finished area delivered by RenderStream.
// From and To are in the caller's coordinate space.
type Region[B any] struct {
	Index  int
	From   float64
	To     float64
	Buffer B
}

// RenderStream is Render with the paint callback replaced by a channel.
//
// Regions are sent in commit order. The channel is closed after the last
// worker cycle has terminated, so ranging over it is equivalent to waiting on
// Handle.Done. With the default buffer (WithRegionsBuffer(0)) the channel can
// hold every area and a commit never blocks; a smaller buffer makes workers
// wait for the reader before they claim their next area. Readers must drain
// the channel until it is closed, also after calling Abort.
//
//nolint:gocritic // ignore unnamed results.
func RenderStream[B any](
	ctx context.Context,
	workers pool.Pool[Worker[B]],
	channel Channel,
	params Params,
	opts ...Option,
) (<-chan Region[B], *Handle, error) {
	p, err := newPass(workers, channel, params, opts)
	if err != nil {
		return nil, nil, err
	}

	size := int(p.cfg.RegionsBuffer)
	if size == 0 {
		size = p.cfg.Spread
	}
	regions := make(chan Region[B], size)

	p.paint = func(buf B, a Area, from, to float64) {
		regions <- Region[B]{Index: a.Index, From: from, To: to, Buffer: buf}
	}
	p.start(ctx, func() { close(regions) })
	return regions, p.handle, nil
}
