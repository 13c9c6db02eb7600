package disk

import (
	"os"
)

// DiskManagerTest wraps DiskManagerImpl over a temp file that is
// removed on ShutDown, for tests that want real file-backed I/O.
type DiskManagerTest struct {
	path string
	DiskManager
}

// NewDiskManagerTest returns a DiskManager instance backed by a fresh
// temp file.
func NewDiskManagerTest() DiskManager {
	f, err := os.CreateTemp("", "bufferpool-*.db")
	if err != nil {
		panic(err)
	}
	path := f.Name()
	f.Close()
	os.Remove(path)

	return &DiskManagerTest{path: path, DiskManager: NewDiskManagerImpl(path)}
}

// ShutDown closes the database file and removes it.
func (d *DiskManagerTest) ShutDown() {
	defer os.Remove(d.path)
	d.DiskManager.ShutDown()
}
