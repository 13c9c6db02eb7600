package disk

import (
	"errors"
	"sync"

	"github.com/dsnet/golib/memfile"
	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/types"
)

// VirtualDiskManagerImpl is an in-memory DiskManager backed by
// dsnet/golib/memfile instead of an os.File, for tests that want many
// fast read_page/write_page round trips without touching a real
// filesystem.
type VirtualDiskManagerImpl struct {
	mu         sync.Mutex
	db         *memfile.File
	nextPageID types.PageID
	numWrites  uint64
	size       int64
}

// NewVirtualDiskManagerImpl returns a DiskManager instance for tests.
func NewVirtualDiskManagerImpl() DiskManager {
	return &VirtualDiskManagerImpl{
		db: memfile.New(make([]byte, 0)),
	}
}

// ShutDown is a no-op; there is no backing file to close.
func (d *VirtualDiskManagerImpl) ShutDown() {}

// WritePage writes a page into the virtual file.
func (d *VirtualDiskManagerImpl) WritePage(pageID types.PageID, pageData []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	offset := int64(pageID) * int64(common.PageSize)
	if _, err := d.db.WriteAt(pageData, offset); err != nil {
		return err
	}

	d.numWrites++
	if end := offset + int64(len(pageData)); end > d.size {
		d.size = end
	}
	return nil
}

// ReadPage reads a page from the virtual file. As in DiskManagerImpl, a
// page whose offset lies past the current end of the file is an I/O
// error, and a never-written page inside the file, or one starting
// exactly at its end, reads as zeroed bytes.
func (d *VirtualDiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	offset := int64(pageID) * int64(common.PageSize)
	if offset > d.size {
		return errors.New("I/O error: read past end of file")
	}

	n, _ := d.db.ReadAt(pageData, offset)
	for i := n; i < len(pageData); i++ {
		pageData[i] = 0
	}
	return nil
}

// AllocatePage returns a fresh, monotonically increasing page id.
func (d *VirtualDiskManagerImpl) AllocatePage() types.PageID {
	d.mu.Lock()
	defer d.mu.Unlock()

	ret := d.nextPageID
	d.nextPageID++
	return ret
}

// DeallocatePage is a notification only.
func (d *VirtualDiskManagerImpl) DeallocatePage(pageID types.PageID) {}

// GetNumWrites returns the number of completed WritePage calls.
func (d *VirtualDiskManagerImpl) GetNumWrites() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.numWrites
}

// Size returns the size of the virtual file.
func (d *VirtualDiskManagerImpl) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}
