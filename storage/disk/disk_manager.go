// Package disk provides block-level read/write and page-id allocation
// on stable storage. The buffer pool manager never interprets page
// contents and only calls through this interface.
package disk

import "github.com/coredb-io/bufferpool/types"

// DiskManager is responsible for interacting with the page file.
// ReadPage and WritePage are synchronous and either succeed fully or
// return an error; the buffer pool manager treats any error here as a
// fatal condition.
type DiskManager interface {
	ReadPage(types.PageID, []byte) error
	WritePage(types.PageID, []byte) error
	AllocatePage() types.PageID
	DeallocatePage(types.PageID)
	GetNumWrites() uint64
	ShutDown()
	Size() int64
}
