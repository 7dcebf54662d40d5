package object

import (
	"github.com/deepnoodle-ai/shadow/op"
)

// TrapTable is the immutable mapping from trap operation kind to the
// callable captured from a handler. It is built exactly once, by the proxy
// snapshot step, and never consulted for anything but reads afterwards. An
// empty slot means "forward this operation directly to the target".
//
// The key set is closed, so the table is a fixed-size array indexed by
// op.Trap rather than a map.
type TrapTable struct {
	slots [op.NumTraps]Callable
}

// Get returns the captured trap for the given operation, if one exists.
func (t *TrapTable) Get(trap op.Trap) (Callable, bool) {
	if int(trap) >= len(t.slots) {
		return nil, false
	}
	fn := t.slots[trap]
	return fn, fn != nil
}

// Has reports whether a trap was captured for the given operation.
func (t *TrapTable) Has(trap op.Trap) bool {
	_, ok := t.Get(trap)
	return ok
}

// Len returns the number of captured traps.
func (t *TrapTable) Len() int {
	count := 0
	for _, fn := range t.slots {
		if fn != nil {
			count++
		}
	}
	return count
}
