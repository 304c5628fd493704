package core

import "sync"

// cycle replays a sequence in order, wrapping back to the start after the
// last element. Each generator attribute of each mock owns its own cycle.
type cycle struct {
	mu     sync.Mutex
	seq    Sequence
	cursor int
}

func newCycle(seq Sequence) *cycle {
	return &cycle{seq: seq}
}

// next returns the value at the cursor and advances it. Inline elements are
// invoked with self and args after the lock is released, so they may call
// back into the mock.
func (c *cycle) next(self *Mock, args []any) any {
	c.mu.Lock()

	if c.cursor > len(c.seq)-1 {
		c.cursor = 0
	}

	current := c.seq[c.cursor]
	c.cursor++

	c.mu.Unlock()

	if inline, ok := current.(Inline); ok {
		return inline(self, args...)
	}

	return current
}
