package spread

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecCompute_AllBranches(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        Compute[int]
		expectR   int
		expectErr func(error) bool
	}{
		{
			name:      "success result + nil error",
			fn:        func(_ context.Context, a Area) (int, error) { return a.Index * 10, nil },
			expectR:   30,
			expectErr: func(err error) bool { return err == nil },
		},
		{
			name:      "returned error passes through",
			fn:        func(_ context.Context, _ Area) (int, error) { return 1, errBoom },
			expectR:   1,
			expectErr: func(err error) bool { return errors.Is(err, errBoom) },
		},
		{
			name:      "panic is recovered",
			fn:        func(_ context.Context, _ Area) (int, error) { panic("kaboom") },
			expectR:   0,
			expectErr: func(err error) bool { return errors.Is(err, ErrComputePanicked) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execCompute(context.Background(), tt.fn, Area{Index: 3})
			require.Equal(t, tt.expectR, got)
			require.Truef(t, tt.expectErr(err), "unexpected error: %v", err)
		})
	}
}

func TestExecCompute_PanicMessageKept(t *testing.T) {
	_, err := execCompute(context.Background(), func(context.Context, Area) (string, error) {
		panic("out of pixels")
	}, Area{})
	require.ErrorContains(t, err, "out of pixels")
}
