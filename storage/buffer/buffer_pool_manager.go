package buffer

import (
	"fmt"

	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/recovery"
	"github.com/coredb-io/bufferpool/storage/disk"
	"github.com/coredb-io/bufferpool/storage/page"
	"github.com/coredb-io/bufferpool/types"
)

// BufferPoolManager mediates between a fixed array of in-memory page
// frames and a disk-resident page file. It owns the frame array, the
// page table (page id -> frame id), a free list of never-populated or
// released frames, and a replacement policy for the rest. A single
// latch serializes every public operation, including the disk I/O an
// operation may need to perform.
type BufferPoolManager struct {
	mu deadlock.Mutex

	poolSize      int
	numInstances  int
	instanceIndex int
	nextPageID    types.PageID

	diskManager disk.DiskManager
	logManager  *recovery.LogManager
	replacer    Replacer

	pages     []*page.Page
	freeList  []types.FrameID
	pageTable map[types.PageID]types.FrameID
}

// NewBufferPoolManager returns a single, unsharded buffer pool: every
// page id it allocates belongs to it alone.
func NewBufferPoolManager(poolSize int, diskManager disk.DiskManager, logManager *recovery.LogManager) *BufferPoolManager {
	return NewShardedBufferPoolManager(poolSize, 1, 0, diskManager, logManager)
}

// NewShardedBufferPoolManager returns one instance of a numInstances-way
// parallel pool. This instance only ever allocates page ids congruent to
// instanceIndex modulo numInstances; a higher-level façade is responsible
// for routing requests to the right instance by page id, and is out of
// scope here.
func NewShardedBufferPoolManager(poolSize, numInstances, instanceIndex int, diskManager disk.DiskManager, logManager *recovery.LogManager) *BufferPoolManager {
	common.Assert(numInstances >= 1, "num_instances must be >= 1, got %d", numInstances)
	common.Assert(instanceIndex < numInstances, "instance_index %d must be < num_instances %d", instanceIndex, numInstances)

	pages := make([]*page.Page, poolSize)
	freeList := make([]types.FrameID, poolSize)
	for i := 0; i < poolSize; i++ {
		pages[i] = page.NewFreeFrame()
		freeList[i] = types.FrameID(i)
	}

	return &BufferPoolManager{
		poolSize:      poolSize,
		numInstances:  numInstances,
		instanceIndex: instanceIndex,
		nextPageID:    types.PageID(instanceIndex),
		diskManager:   diskManager,
		logManager:    logManager,
		replacer:      NewLRUReplacer(poolSize),
		pages:         pages,
		freeList:      freeList,
		pageTable:     make(map[types.PageID]types.FrameID, poolSize),
	}
}

// allocatePageID hands out the next id owned by this instance and
// advances the counter by numInstances, so every id this instance ever
// returns is congruent to instanceIndex modulo numInstances.
func (b *BufferPoolManager) allocatePageID() types.PageID {
	id := b.nextPageID
	b.nextPageID += types.PageID(b.numInstances)
	common.Assert(int(id)%b.numInstances == b.instanceIndex, "allocated page id %d does not satisfy id mod num_instances == instance_index", id)
	return id
}

// acquireFrame finds a frame able to host a page that isn't already
// resident: first the free list, then (after checking every resident
// frame isn't pinned) the replacer's victim. A replacer-selected frame
// that holds a dirty page is written back and evicted from the page
// table before it is handed back. ok is false if no frame is available.
// A disk failure while writing back a victim is not recoverable here:
// mustWritePage panics rather than leaving the pool in a state where
// the requested operation silently did nothing.
func (b *BufferPoolManager) acquireFrame() (frameID types.FrameID, ok bool) {
	if len(b.freeList) > 0 {
		frameID, b.freeList = b.freeList[0], b.freeList[1:]
		return frameID, true
	}

	if b.allResidentFramesPinned() {
		return types.InvalidFrameID, false
	}

	frameID, ok = b.replacer.Victim()
	if !ok {
		return types.InvalidFrameID, false
	}

	victim := b.pages[frameID]
	if victim.ID().IsValid() {
		if victim.IsDirty() {
			b.mustWritePage(victim.ID(), victim.Data()[:])
		}
		delete(b.pageTable, victim.ID())
	}

	return frameID, true
}

// mustWritePage writes pageData to pageID or panics: a disk failure is
// not a recoverable condition the caller can back off from.
func (b *BufferPoolManager) mustWritePage(pageID types.PageID, pageData []byte) {
	if err := b.diskManager.WritePage(pageID, pageData); err != nil {
		panic(fmt.Sprintf("buffer pool: disk write failed for page %d: %v", pageID, err))
	}
}

// mustReadPage reads pageID into buf or panics, for the same reason.
func (b *BufferPoolManager) mustReadPage(pageID types.PageID, buf []byte) {
	if err := b.diskManager.ReadPage(pageID, buf); err != nil {
		panic(fmt.Sprintf("buffer pool: disk read failed for page %d: %v", pageID, err))
	}
}

// allResidentFramesPinned is the pre-scan new_page and fetch_page run
// before consulting the replacer: it short-circuits the all-pinned case
// without depending on the replacer to report it correctly.
func (b *BufferPoolManager) allResidentFramesPinned() bool {
	for _, frameID := range b.pageTable {
		if b.pages[frameID].PinCount() == 0 {
			return false
		}
	}
	return true
}

// NewPage allocates a fresh page id and binds it to a frame, pinned
// once. ok is false if every frame is pinned; the allocated id is
// abandoned in that case, never reused.
func (b *BufferPoolManager) NewPage() (pg *page.Page, pageID types.PageID, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	common.ShPrintf(common.RDB_OP_FUNC_CALL, "BufferPoolManager::NewPage called.\n")

	pageID = b.allocatePageID()

	frameID, ok := b.acquireFrame()
	if !ok {
		return nil, types.InvalidPageID, false
	}

	pg = b.pages[frameID]
	pg.BindNew(pageID)
	b.pageTable[pageID] = frameID
	b.replacer.Pin(frameID)

	return pg, pageID, true
}

// FetchPage returns the requested page, pinned, loading it from disk
// and evicting a victim frame if it isn't already resident. ok is false
// if every frame is pinned and none can be brought in.
func (b *BufferPoolManager) FetchPage(pageID types.PageID) (pg *page.Page, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	common.ShPrintf(common.RDB_OP_FUNC_CALL, "BufferPoolManager::FetchPage called. pageId:%d\n", pageID)

	if frameID, hit := b.pageTable[pageID]; hit {
		pg := b.pages[frameID]
		pg.IncPinCount()
		b.replacer.Pin(frameID)
		return pg, true
	}

	frameID, ok := b.acquireFrame()
	if !ok {
		return nil, false
	}

	buf := make([]byte, common.PageSize)
	b.mustReadPage(pageID, buf)

	pg = b.pages[frameID]
	pg.BindNew(pageID)
	pg.Copy(0, buf)
	b.pageTable[pageID] = frameID
	b.replacer.Pin(frameID)

	return pg, true
}

// UnpinPage decrements a resident page's pin count and folds isDirty
// into its dirty flag with OR semantics: once a holder reports a page
// dirty, a later holder reporting it clean does not erase that. The
// frame becomes an eviction candidate only once its pin count reaches
// zero. ok is false if the page isn't resident or was already unpinned
// down to zero.
func (b *BufferPoolManager) UnpinPage(pageID types.PageID, isDirty bool) (ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	common.ShPrintf(common.RDB_OP_FUNC_CALL, "BufferPoolManager::UnpinPage called. pageId:%d isDirty:%v\n", pageID, isDirty)

	frameID, hit := b.pageTable[pageID]
	if !hit {
		return false
	}

	pg := b.pages[frameID]
	pg.SetIsDirty(pg.IsDirty() || isDirty)

	if pg.PinCount() <= 0 {
		return false
	}

	pg.DecPinCount()
	if pg.PinCount() == 0 {
		b.replacer.Unpin(frameID)
	}
	return true
}

// FlushPage writes a resident page's current bytes to disk regardless
// of pin count, unconditionally (even if not dirty), and clears its
// dirty flag. ok is false if the page isn't resident.
func (b *BufferPoolManager) FlushPage(pageID types.PageID) (ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushResidentPage(pageID)
}

func (b *BufferPoolManager) flushResidentPage(pageID types.PageID) bool {
	frameID, hit := b.pageTable[pageID]
	if !hit {
		return false
	}

	pg := b.pages[frameID]
	b.mustWritePage(pageID, pg.Data()[:])
	pg.SetIsDirty(false)
	return true
}

// FlushAllPages flushes every resident page. No ordering among pages is
// guaranteed beyond whatever the disk manager provides.
func (b *BufferPoolManager) FlushAllPages() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for pageID := range b.pageTable {
		b.flushResidentPage(pageID)
	}
}

// DeletePage notifies the disk manager of the deallocation and, if the
// page is resident and unpinned, writes it back if dirty, evicts it from
// the page table, resets the frame, and returns it to the free list. A
// non-resident page deletes successfully as a no-op; a pinned resident
// page cannot be deleted.
func (b *BufferPoolManager) DeletePage(pageID types.PageID) (ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	common.ShPrintf(common.RDB_OP_FUNC_CALL, "BufferPoolManager::DeletePage called. pageId:%d\n", pageID)

	b.diskManager.DeallocatePage(pageID)

	frameID, hit := b.pageTable[pageID]
	if !hit {
		return true
	}

	pg := b.pages[frameID]
	if pg.PinCount() != 0 {
		return false
	}

	if pg.IsDirty() {
		b.mustWritePage(pageID, pg.Data()[:])
	}

	delete(b.pageTable, pageID)
	b.replacer.Pin(frameID)
	pg.ResetFrame()
	b.freeList = append(b.freeList, frameID)

	return true
}

// PoolSize returns the number of frames this instance manages.
func (b *BufferPoolManager) PoolSize() int {
	return b.poolSize
}
