package spread

import "sync/atomic"

// cursor hands out permutation slots [0, limit) to concurrently running cycles.
// A value is never handed out twice and the counter never passes limit.
type cursor struct {
	next  atomic.Int64
	limit int64
}

func newCursor(limit int) *cursor {
	return &cursor{limit: int64(limit)}
}

// claim reserves the next slot. ok is false once every slot has been handed out.
func (c *cursor) claim() (slot int, ok bool) {
	for {
		cur := c.next.Load()
		if cur >= c.limit {
			return 0, false
		}
		if c.next.CompareAndSwap(cur, cur+1) {
			return int(cur), true
		}
	}
}

// claimed returns how many slots have been handed out so far.
func (c *cursor) claimed() int { return int(c.next.Load()) }
