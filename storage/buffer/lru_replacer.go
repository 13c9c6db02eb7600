package buffer

import (
	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/coredb-io/bufferpool/types"
)

// lruNode is one entry of the LRU replacer's intrusive doubly-linked
// list, front-to-back ordered most-recently-unpinned to
// least-recently-unpinned.
type lruNode struct {
	frameID    types.FrameID
	prev, next *lruNode
}

// LRUReplacer implements Replacer in least-recently-unpinned order.
// Unlike a textbook LRU cache, it does not refresh a frame's position
// on repeated Unpin calls: callers pin on every access, so unpin
// recency is the only signal this policy uses.
type LRUReplacer struct {
	mu       deadlock.Mutex
	capacity int
	front    *lruNode // most recently unpinned
	back     *lruNode // least recently unpinned (next victim)
	index    map[types.FrameID]*lruNode
}

// NewLRUReplacer returns an LRU replacer with room for capacity frames
// (the buffer pool's pool_size).
func NewLRUReplacer(capacity int) *LRUReplacer {
	return &LRUReplacer{
		capacity: capacity,
		index:    make(map[types.FrameID]*lruNode, capacity),
	}
}

// Victim removes and returns the least-recently-unpinned frame.
func (r *LRUReplacer) Victim() (types.FrameID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.back == nil {
		return types.InvalidFrameID, false
	}

	victim := r.back
	r.unlink(victim)
	delete(r.index, victim.frameID)
	return victim.frameID, true
}

// Pin removes frameID from the evictable set. No-op if absent: the
// buffer pool manager calls Pin eagerly when binding a fresh victim
// frame, whether or not the replacer already knew about it.
func (r *LRUReplacer) Pin(frameID types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, ok := r.index[frameID]
	if !ok {
		return
	}
	r.unlink(node)
	delete(r.index, frameID)
}

// Unpin registers frameID as evictable at the front (most recent). A
// frame already registered is left exactly where it is — no recency
// refresh — and a frame offered once the replacer is at capacity is
// dropped silently.
func (r *LRUReplacer) Unpin(frameID types.FrameID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[frameID]; ok {
		return
	}
	if len(r.index) >= r.capacity {
		return
	}

	node := &lruNode{frameID: frameID}
	r.pushFront(node)
	r.index[frameID] = node
}

// Size returns the number of frames currently registered as evictable.
func (r *LRUReplacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.index)
}

func (r *LRUReplacer) pushFront(node *lruNode) {
	node.next = r.front
	node.prev = nil
	if r.front != nil {
		r.front.prev = node
	}
	r.front = node
	if r.back == nil {
		r.back = node
	}
}

func (r *LRUReplacer) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		r.front = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		r.back = node.prev
	}
	node.prev, node.next = nil, nil
}
