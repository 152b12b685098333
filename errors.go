package spread

import "errors"

const Namespace = "spread"

var (
	ErrInvalidConfig   = errors.New(Namespace + ": invalid configuration")
	ErrMissingChannel  = errors.New(Namespace + ": worker does not expose the requested channel")
	ErrComputePanicked = errors.New(Namespace + ": compute panicked")
)
