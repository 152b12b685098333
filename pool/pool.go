// Package pool describes the fixed set of compute workers a render pass is spread over.
//
// The scheduler only reads a Pool during setup; spawning and terminating the
// workers behind it remains the caller's concern.
package pool

// Pool is a fixed, indexable set of workers.
type Pool[W any] interface {
	// Len returns the number of workers, which equals the number of concurrently
	// running compute calls during a render pass.
	Len() int

	// Worker returns the worker at position i, 0 <= i < Len().
	Worker(i int) W
}
