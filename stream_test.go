package spread_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/spread"
)

// collectRegions drains ch until it is closed or d expires.
func collectRegions[B any](t *testing.T, ch <-chan spread.Region[B], d time.Duration) []spread.Region[B] {
	t.Helper()
	res := make([]spread.Region[B], 0)
	deadline := time.After(d)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-deadline:
			t.Fatalf("regions channel not closed after %v", d)
			return res
		}
	}
}

func TestRenderStream_DeliversEveryRegion(t *testing.T) {
	regions, h, err := spread.RenderStream(context.Background(), newColumnPool(t, 4, nil), columns,
		spread.Params{Width: 200, Height: 10}, spread.WithSpread(40), spread.WithScale(2))
	require.NoError(t, err)

	got := collectRegions(t, regions, 5*time.Second)
	require.Len(t, got, 40)

	// channel closes only after the pass is done
	select {
	case <-h.Done():
	default:
		t.Fatal("regions channel closed before the pass finished")
	}
	require.NoError(t, h.Err())

	sort.Slice(got, func(i, j int) bool { return got[i].Index < got[j].Index })
	for i, r := range got {
		require.Equal(t, i, r.Index)
		require.Equal(t, r.Buffer.Area.Index, r.Index)
		require.Equal(t, float64(i)*5, r.From)
		require.Equal(t, float64(i+1)*5, r.To)
		require.Equal(t, r.Buffer.Area.From/2, r.From)
	}
}

func TestRenderStream_SmallBufferWaitsForReader(t *testing.T) {
	regions, h, err := spread.RenderStream(context.Background(), newColumnPool(t, 2, nil), columns,
		spread.Params{Width: 10, Height: 1}, spread.WithSpread(10), spread.WithRegionsBuffer(1))
	require.NoError(t, err)

	// with nobody reading, at most buffer+workers areas can be claimed
	time.Sleep(20 * time.Millisecond)
	require.LessOrEqual(t, h.Progress().Claimed, 3)

	require.Len(t, collectRegions(t, regions, 5*time.Second), 10)
	require.NoError(t, h.Err())
}

func TestRenderStream_AbortClosesChannel(t *testing.T) {
	g := newGate(10)
	regions, h, err := spread.RenderStream(context.Background(), newColumnPool(t, 2, g.compute), columns,
		spread.Params{Width: 10, Height: 1}, spread.WithSpread(10))
	require.NoError(t, err)

	g.awaitStarts(t, 2)
	h.Abort()
	close(g.release)

	require.Empty(t, collectRegions(t, regions, 5*time.Second))
	require.True(t, h.Aborted())
}

func TestRenderStream_ReportsFailuresOnHandle(t *testing.T) {
	errBoom := errors.New("boom")
	workers := newColumnPool(t, 1, func(context.Context, int, spread.Area) error { return errBoom })

	regions, h, err := spread.RenderStream(context.Background(), workers, columns, spread.Params{Width: 10, Height: 1})
	require.NoError(t, err)

	require.Empty(t, collectRegions(t, regions, 5*time.Second))
	require.ErrorIs(t, h.Err(), errBoom)
}

func TestRenderStream_SetupError(t *testing.T) {
	regions, h, err := spread.RenderStream(context.Background(), newColumnPool(t, 1, nil), "missing",
		spread.Params{Width: 10, Height: 1})
	require.ErrorIs(t, err, spread.ErrMissingChannel)
	require.Nil(t, regions)
	require.Nil(t, h)
}
