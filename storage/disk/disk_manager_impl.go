package disk

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/types"
)

// DiskManagerImpl is the on-disk implementation of DiskManager: a single
// page file addressed by page_id * PageSize offsets.
type DiskManagerImpl struct {
	db         *os.File
	fileName   string
	nextPageID types.PageID
	numWrites  uint64
	size       int64
}

// NewDiskManagerImpl opens (creating if necessary) the page file at
// dbFilename and resumes page-id allocation after whatever pages it
// already holds.
func NewDiskManagerImpl(dbFilename string) DiskManager {
	file, err := os.OpenFile(dbFilename, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		log.Fatalln("can't open db file")
		return nil
	}

	fileInfo, err := file.Stat()
	if err != nil {
		log.Fatalln("file info error")
		return nil
	}

	fileSize := fileInfo.Size()
	nPages := fileSize / common.PageSize

	return &DiskManagerImpl{
		db:         file,
		fileName:   dbFilename,
		nextPageID: types.PageID(nPages),
		size:       fileSize,
	}
}

// ShutDown closes the database file.
func (d *DiskManagerImpl) ShutDown() {
	d.db.Close()
}

// WritePage writes a page to the database file.
func (d *DiskManagerImpl) WritePage(pageID types.PageID, pageData []byte) error {
	offset := int64(pageID) * common.PageSize
	if _, err := d.db.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	bytesWritten, err := d.db.Write(pageData)
	if err != nil {
		return err
	}
	if bytesWritten != common.PageSize {
		return errors.New("bytes written not equal to page size")
	}

	d.numWrites++
	if offset+int64(bytesWritten) > d.size {
		d.size = offset + int64(bytesWritten)
	}

	return d.db.Sync()
}

// ReadPage reads a page from the database file. A page whose offset
// lies past the current end of file is an I/O error; a page inside the
// file that was never written, or one starting exactly at the end of
// file, returns zeroed bytes.
func (d *DiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
	offset := int64(pageID) * common.PageSize

	fileInfo, err := d.db.Stat()
	if err != nil {
		return errors.New("file info error")
	}
	if offset > fileInfo.Size() {
		return errors.New("I/O error: read past end of file")
	}

	if _, err := d.db.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	bytesRead, err := d.db.Read(pageData)
	if err != nil && err != io.EOF {
		return errors.New("I/O error while reading")
	}

	if bytesRead < common.PageSize {
		for i := bytesRead; i < common.PageSize; i++ {
			pageData[i] = 0
		}
	}
	return nil
}

// AllocatePage returns a fresh, monotonically increasing page id.
func (d *DiskManagerImpl) AllocatePage() types.PageID {
	ret := d.nextPageID
	d.nextPageID++
	return ret
}

// DeallocatePage is a notification only; stable-storage reclamation of
// the id space is a higher layer's concern.
func (d *DiskManagerImpl) DeallocatePage(pageID types.PageID) {}

// GetNumWrites returns the number of completed WritePage calls.
func (d *DiskManagerImpl) GetNumWrites() uint64 {
	return d.numWrites
}

// Size returns the size of the page file on disk.
func (d *DiskManagerImpl) Size() int64 {
	return d.size
}

// RemoveDBFile removes the backing file. Only valid after ShutDown.
func (d *DiskManagerImpl) RemoveDBFile() {
	os.Remove(d.fileName)
}
