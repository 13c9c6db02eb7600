// Package page defines the in-memory frame representation the buffer
// pool manager hands out: a fixed-size byte buffer plus the per-frame
// metadata (page id, pin count, dirty flag) needed to track residency.
// Page content itself is opaque to this package.
package page

import (
	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/types"
)

// PageSize is the size in bytes of a page, on disk and in a frame.
const PageSize = common.PageSize

// Page is a frame: the byte buffer plus the metadata the buffer pool
// manager needs to decide whether the frame can be evicted.
type Page struct {
	id       types.PageID
	pinCount int
	isDirty  bool
	data     [PageSize]byte
}

// NewFreeFrame returns an unpopulated frame: no page id, unpinned, not
// dirty, zeroed. The buffer pool manager's frame array starts out as
// pool_size of these.
func NewFreeFrame() *Page {
	return &Page{id: types.InvalidPageID}
}

// BindNew rebinds a free or just-evicted frame to a new page id,
// pinned once, not dirty, with zeroed contents. The caller fills in
// real bytes afterward (via Data) when the page is read from disk.
func (p *Page) BindNew(id types.PageID) {
	p.id = id
	p.pinCount = 1
	p.isDirty = false
	p.data = [PageSize]byte{}
}

// ID returns the page id currently resident in this frame.
func (p *Page) ID() types.PageID { return p.id }

// PinCount returns the number of outstanding holders of this frame.
func (p *Page) PinCount() int { return p.pinCount }

// IncPinCount records a new holder.
func (p *Page) IncPinCount() { p.pinCount++ }

// DecPinCount releases a holder; it is a no-op below zero.
func (p *Page) DecPinCount() {
	if p.pinCount > 0 {
		p.pinCount--
	}
}

// IsDirty reports whether the in-memory contents differ from the
// on-disk image.
func (p *Page) IsDirty() bool { return p.isDirty }

// SetIsDirty sets the dirty flag directly. BufferPoolManager.UnpinPage
// applies sticky OR-semantics on top of this (see storage/buffer).
func (p *Page) SetIsDirty(isDirty bool) { p.isDirty = isDirty }

// Data returns the frame's backing buffer. The caller may read or
// write it directly while the pin is held; the buffer pool latch only
// protects bookkeeping, never page contents.
func (p *Page) Data() *[PageSize]byte { return &p.data }

// Copy writes src into the frame's buffer starting at offset.
func (p *Page) Copy(offset int, src []byte) {
	copy(p.data[offset:], src)
}

// ResetFrame clears a frame back to the empty state a free-list entry
// must be in: no page id, no pins, not dirty, zeroed bytes.
func (p *Page) ResetFrame() {
	p.id = types.InvalidPageID
	p.pinCount = 0
	p.isDirty = false
	p.data = [PageSize]byte{}
}
