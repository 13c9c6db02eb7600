package page

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coredb-io/bufferpool/types"
)

func TestNewFreeFrameIsEmpty(t *testing.T) {
	p := NewFreeFrame()

	require.Equal(t, types.InvalidPageID, p.ID())
	require.False(t, p.ID().IsValid())
	require.Equal(t, 0, p.PinCount())
	require.False(t, p.IsDirty())
	require.Equal(t, [PageSize]byte{}, *p.Data())
}

func TestBindNewResidentPinnedState(t *testing.T) {
	p := NewFreeFrame()

	p.BindNew(types.PageID(7))

	require.Equal(t, types.PageID(7), p.ID())
	require.Equal(t, 1, p.PinCount())
	require.False(t, p.IsDirty())
	require.Equal(t, [PageSize]byte{}, *p.Data())
}

func TestBindNewOverwritesAPreviousResidency(t *testing.T) {
	p := NewFreeFrame()
	p.BindNew(types.PageID(1))
	p.Copy(0, []byte("stale bytes"))
	p.SetIsDirty(true)

	p.BindNew(types.PageID(2))

	require.Equal(t, types.PageID(2), p.ID())
	require.Equal(t, 1, p.PinCount())
	require.False(t, p.IsDirty())
	require.Equal(t, [PageSize]byte{}, *p.Data())
}

func TestPinCountTransitionsToEvictable(t *testing.T) {
	p := NewFreeFrame()
	p.BindNew(types.PageID(3))

	p.IncPinCount()
	require.Equal(t, 2, p.PinCount())

	p.DecPinCount()
	p.DecPinCount()
	require.Equal(t, 0, p.PinCount(), "resident, evictable: no outstanding holders")

	p.DecPinCount()
	require.Equal(t, 0, p.PinCount(), "a further release below zero is a no-op")
}

func TestSetIsDirtyAndCopy(t *testing.T) {
	p := NewFreeFrame()
	p.BindNew(types.PageID(4))

	require.False(t, p.IsDirty())
	p.SetIsDirty(true)
	require.True(t, p.IsDirty())

	p.Copy(0, []byte("HELLO"))
	var want [PageSize]byte
	copy(want[:], "HELLO")
	require.Equal(t, want, *p.Data())
}

func TestResetFrameReturnsToFreeState(t *testing.T) {
	p := NewFreeFrame()
	p.BindNew(types.PageID(5))
	p.Copy(0, []byte("resident bytes"))
	p.SetIsDirty(true)

	p.ResetFrame()

	require.Equal(t, types.InvalidPageID, p.ID())
	require.Equal(t, 0, p.PinCount())
	require.False(t, p.IsDirty())
	require.Equal(t, [PageSize]byte{}, *p.Data())
}
