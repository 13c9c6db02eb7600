package disk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/bufferpool/common"
	"github.com/coredb-io/bufferpool/types"
)

func TestDiskManagerImplReadWritePage(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buffer := make([]byte, common.PageSize)
	copy(data, "A test string.")

	require.NoError(t, dm.WritePage(types.PageID(0), data))
	require.NoError(t, dm.ReadPage(types.PageID(0), buffer))
	require.Equal(t, data, buffer)

	for i := range buffer {
		buffer[i] = 0
	}
	copy(data, "Another test string.")

	require.NoError(t, dm.WritePage(types.PageID(5), data))
	require.NoError(t, dm.ReadPage(types.PageID(5), buffer))
	require.Equal(t, data, buffer)
}

func TestDiskManagerImplReadUnwrittenPageIsZeroed(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	require.NoError(t, dm.WritePage(types.PageID(3), make([]byte, common.PageSize)))

	buffer := make([]byte, common.PageSize)
	for i := range buffer {
		buffer[i] = 0xFF
	}
	require.NoError(t, dm.ReadPage(types.PageID(1), buffer))
	for _, b := range buffer {
		require.Zero(t, b)
	}
}

func TestDiskManagerImplAllocatePageIsMonotonic(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	require.Equal(t, types.PageID(0), dm.AllocatePage())
	require.Equal(t, types.PageID(1), dm.AllocatePage())
	require.Equal(t, types.PageID(2), dm.AllocatePage())
}

func TestVirtualDiskManagerReadWritePage(t *testing.T) {
	dm := NewVirtualDiskManagerImpl()
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	copy(data, "virtual page contents")
	require.NoError(t, dm.WritePage(types.PageID(2), data))

	buffer := make([]byte, common.PageSize)
	require.NoError(t, dm.ReadPage(types.PageID(2), buffer))
	require.Equal(t, data, buffer)
}
