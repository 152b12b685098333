package spread

import (
	"errors"
	"fmt"
)

// AreaError exposes correlation metadata for a failed compute call.
type AreaError interface {
	error
	Unwrap() error
	AreaIndex() int
	WorkerIndex() int
	Bounds() (from, to float64)
}

type areaTaggedError struct {
	err    error
	area   int
	worker int
	from   float64
	to     float64
}

func newAreaTaggedError(err error, a Area, worker int) error {
	if err == nil {
		return nil
	}
	return &areaTaggedError{err: err, area: a.Index, worker: worker, from: a.From, to: a.To}
}

func (e *areaTaggedError) Error() string { return e.err.Error() }
func (e *areaTaggedError) Unwrap() error { return e.err }

func (e *areaTaggedError) AreaIndex() int   { return e.area }
func (e *areaTaggedError) WorkerIndex() int { return e.worker }

func (e *areaTaggedError) Bounds() (float64, float64) { return e.from, e.to }

func (e *areaTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "area(index=%d,worker=%d,from=%g,to=%g): %+v",
				e.area, e.worker, e.from, e.to, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractAreaIndex returns the index of the area whose compute call produced err.
func ExtractAreaIndex(err error) (int, bool) {
	var ae AreaError
	if errors.As(err, &ae) {
		return ae.AreaIndex(), true
	}
	return 0, false
}

// ExtractWorkerIndex returns the position in the pool of the worker that produced err.
func ExtractWorkerIndex(err error) (int, bool) {
	var ae AreaError
	if errors.As(err, &ae) {
		return ae.WorkerIndex(), true
	}
	return 0, false
}
