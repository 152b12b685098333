package pool

import "errors"

var ErrInvalidSize = errors.New("pool: size must be > 0")

type fixed[W any] struct {
	workers []W
}

// NewFixed builds a pool of n workers, calling newFn once per position.
func NewFixed[W any](n uint, newFn func(i int) W) (Pool[W], error) {
	if n == 0 || newFn == nil {
		return nil, ErrInvalidSize
	}
	ws := make([]W, n)
	for i := range ws {
		ws[i] = newFn(i)
	}
	return &fixed[W]{workers: ws}, nil
}

// Of wraps already constructed workers. The slice is copied.
func Of[W any](ws ...W) Pool[W] {
	cp := make([]W, len(ws))
	copy(cp, ws)
	return &fixed[W]{workers: cp}
}

func (p *fixed[W]) Len() int { return len(p.workers) }

func (p *fixed[W]) Worker(i int) W { return p.workers[i] }
