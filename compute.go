package spread

import (
	"context"
	"fmt"
)

// Channel names a compute capability exposed identically by every worker in a pool.
type Channel string

// Params describes a surface in the caller's (intrinsic) coordinate space.
// Options are handed to every compute call unmodified.
type Params struct {
	Width   float64
	Height  float64
	Options any
}

// Area is what a worker receives for one compute call. Width, Height, From and To
// are expressed at render resolution, i.e. already multiplied by the pass scale.
type Area struct {
	Index   int
	Width   float64
	Height  float64
	From    float64
	To      float64
	Options any
}

// Compute renders one area and returns its pixel buffer.
//
// Implementations may block; the scheduler keeps exactly one call in flight per worker.
// The context is the one given to Render and is never cancelled by Abort.
type Compute[B any] func(ctx context.Context, a Area) (B, error)

// Worker maps channels to the compute functions a single pool member exposes.
type Worker[B any] map[Channel]Compute[B]

// Paint receives a finished area. from and to are in the caller's coordinate space.
// Calls are serialized: Paint never runs concurrently with itself within one pass.
type Paint[B any] func(buf B, from, to float64)

// execCompute runs fn and converts a panic into an ErrComputePanicked error.
func execCompute[B any](ctx context.Context, fn Compute[B], a Area) (result B, err error) {
	defer func() {
		if ePanic := recover(); ePanic != nil {
			var zero B
			result = zero
			err = fmt.Errorf("%w: %v", ErrComputePanicked, ePanic)
		}
	}()

	return fn(ctx, a)
}
