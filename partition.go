package spread

import (
	"math"
	"strconv"

	"github.com/ygrebnov/errorc"
)

// Partitioner splits a width into count contiguous intervals and returns
// the count+1 boundaries: non-decreasing, starting at 0 and ending at width.
// Implementations must be pure.
type Partitioner func(width float64, count int) ([]float64, error)

// EvenPartition divides width into count intervals of equal size.
func EvenPartition(width float64, count int) ([]float64, error) {
	if count <= 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "partition count must be > 0, got "+strconv.Itoa(count)))
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "partition width must be a finite non-negative number"))
	}

	boundaries := make([]float64, count+1)
	for i := 0; i < count; i++ {
		boundaries[i] = width * float64(i) / float64(count)
	}
	// pinned: width*count/count may drift for some widths
	boundaries[count] = width

	return boundaries, nil
}

// validateBoundaries checks what a Partitioner produced before any area is handed out.
func validateBoundaries(b []float64, width float64, count int) error {
	if len(b) != count+1 {
		return errorc.With(ErrInvalidConfig, errorc.String("",
			"partitioner returned "+strconv.Itoa(len(b))+" boundaries, want "+strconv.Itoa(count+1)))
	}
	if b[0] != 0 || b[count] != width {
		return errorc.With(ErrInvalidConfig, errorc.String("", "partition must start at 0 and end at the render width"))
	}
	for i := 1; i < len(b); i++ {
		if b[i] < b[i-1] || math.IsNaN(b[i]) {
			return errorc.With(ErrInvalidConfig, errorc.String("",
				"partition boundaries must be non-decreasing at index "+strconv.Itoa(i)))
		}
	}
	return nil
}
