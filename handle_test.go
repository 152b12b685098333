package spread

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandle_AbortIsIdempotent(t *testing.T) {
	h := newHandle(3, nopLogger{})
	require.False(t, h.Aborted())

	h.Abort()
	require.True(t, h.Aborted())
	h.Abort()
	require.True(t, h.Aborted())

	painted := false
	require.False(t, h.commit(func() { painted = true }))
	require.False(t, painted)
	require.Equal(t, 0, h.Progress().Committed)
}

func TestHandle_CommitCountsPaints(t *testing.T) {
	h := newHandle(2, nopLogger{})
	calls := 0
	require.True(t, h.commit(func() { calls++ }))
	require.True(t, h.commit(func() { calls++ }))
	require.Equal(t, 2, calls)
	require.Equal(t, Progress{Total: 2, Committed: 2}, h.Progress())
}

func TestHandle_AbortFromInsidePaint(t *testing.T) {
	h := newHandle(2, nopLogger{})
	require.True(t, h.commit(func() { h.Abort() }))
	require.False(t, h.commit(func() { t.Fatal("paint after abort") }))
}

func TestHandle_FinishJoinsErrorsAndClosesDone(t *testing.T) {
	h := newHandle(4, nopLogger{})
	e1, e2 := errors.New("e1"), errors.New("e2")

	h.cycles.Add(2)
	go func() { h.recordError(e1); h.cycles.Done() }()
	go func() { h.recordError(e2); h.cycles.Done() }()

	require.NoError(t, h.Err(), "Err must be nil while running")

	onDone := make(chan bool, 1)
	go h.finish(func() {
		_, open := <-h.Done()
		onDone <- !open
	})

	select {
	case doneClosedFirst := <-onDone:
		require.True(t, doneClosedFirst, "done must be closed before onDone runs")
	case <-time.After(time.Second):
		t.Fatal("finish did not complete")
	}

	err := h.Wait(context.Background())
	require.ErrorIs(t, err, e1)
	require.ErrorIs(t, err, e2)
	require.Equal(t, err, h.Err())
	require.Equal(t, 2, h.Progress().Failed)
}

func TestHandle_WaitHonorsContext(t *testing.T) {
	h := newHandle(1, nopLogger{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, h.Wait(ctx), context.DeadlineExceeded)
}

func TestHandle_WatchAbortsOnContextCancel(t *testing.T) {
	h := newHandle(1, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	h.watch(ctx)
	cancel()

	require.Eventually(t, h.Aborted, time.Second, time.Millisecond)
}
