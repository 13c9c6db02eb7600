// Package recovery holds the LogManager the buffer pool manager accepts
// at construction for future write-ahead-log integration. The buffer
// pool core makes no calls into it; recovery and checkpointing are not
// implemented here.
package recovery

import (
	deadlock "github.com/sasha-s/go-deadlock"

	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/storage/disk"
)

// LSN is a log sequence number.
type LSN int32

// LogManager holds an in-memory log buffer, LSN bookkeeping and a
// disk.DiskManager handle. It has no methods to append records or to
// flush the buffer; the buffer pool manager holds one but never calls
// into it.
type LogManager struct {
	mu            deadlock.Mutex
	nextLSN       LSN
	persistentLSN LSN
	buffer        []byte
	diskManager   disk.DiskManager
}

// NewLogManager returns a LogManager backed by diskManager for its
// eventual log flushes.
func NewLogManager(diskManager disk.DiskManager) *LogManager {
	return &LogManager{
		persistentLSN: common.InvalidLSN,
		buffer:        make([]byte, common.LogBufferSize),
		diskManager:   diskManager,
	}
}

// GetNextLSN returns the LSN that would be assigned to the next
// appended record.
func (lm *LogManager) GetNextLSN() LSN {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return lm.nextLSN
}

// GetPersistentLSN returns the highest LSN known to be durable.
func (lm *LogManager) GetPersistentLSN() LSN {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return lm.persistentLSN
}
