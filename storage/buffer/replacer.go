package buffer

import "github.com/coredb-io/bufferpool/types"

// Replacer is the eviction-policy abstraction: a bounded set of
// evictable frame ids. Implementations may order victims however they
// like (FIFO, clock, LRU-K); the buffer pool manager only depends on
// this interface, never on a concrete variant.
//
// The entire contract is a critical section guarded by the
// implementation's own lock: it is legal for a BufferPoolManager to call
// a Replacer while holding the pool latch, but a Replacer must never
// call back into the pool.
type Replacer interface {
	// Victim removes and returns some frame id currently registered as
	// evictable. ok is false if the replacer is empty.
	Victim() (frameID types.FrameID, ok bool)

	// Pin ensures frameID is not registered as evictable. Idempotent if
	// frameID is absent or already pinned.
	Pin(frameID types.FrameID)

	// Unpin registers frameID as evictable. Idempotent if already
	// present. Silently rejects the frame if the replacer is already at
	// capacity.
	Unpin(frameID types.FrameID)

	// Size returns the number of frames currently registered as
	// evictable.
	Size() int
}
