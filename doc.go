// Package spread paints a 2D surface incrementally by spreading one render pass
// over a fixed pool of concurrent compute workers.
//
// The surface is divided into column-shaped areas (Spread of them, 100 by
// default). Areas are visited in a uniformly random order so the picture fills
// in evenly instead of left to right. Every worker repeatedly claims the next
// unvisited area, computes it and hands the result to the paint callback, so
// the number of compute calls in flight always equals the pool size.
//
// Entry points
//   - Render(ctx, workers, channel, params, paint, opts...): starts a pass and returns a *Handle.
//   - Run(...): same as Render, blocks until the pass has finished.
//   - RenderStream(ctx, workers, channel, params, opts...): delivers finished areas on a channel.
//
// Coordinates
// Params are given in the caller's (intrinsic) space. With WithScale(s) workers
// receive an Area scaled by s, while paint receives the bounds divided by s again.
//
// Cancellation
// Handle.Abort (or cancelling the render ctx) is cooperative: computes already
// running are allowed to finish, their results are dropped and no paint call
// starts afterwards. Aborting is not an error.
//
// Failures
// A compute error ends only the cycle of the worker that returned it; the
// remaining workers keep going and Handle.Err reports all failures joined.
// WithStopOnError turns the first failure into an abort of the pass.
//
// Defaults
//   - Spread: 100
//   - Scale: 1
//   - Partitioner: EvenPartition
//   - ErrorTagging: enabled
//   - StopOnError: false
//   - Logger and metrics: no-op
package spread
