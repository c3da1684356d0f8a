package bridge

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobutsusolver/dobutsu/engine"
)

func TestWriteInitialRoundTrips(t *testing.T) {
	b := New(16)
	addr := b.WriteInitial()
	assert.Equal(t, 0, addr)
	assert.Equal(t, recordSize, b.Cursor())
	assert.Equal(t, engine.Initial(), b.getState(addr))
}

func TestWriteChildrenMatchesVisitChildren(t *testing.T) {
	b := New(64)
	initAddr := b.WriteInitial()
	headerAddr := b.WriteChildren(initAddr)

	count := binary.LittleEndian.Uint64(b.BufferPtr()[headerAddr : headerAddr+recordSize])

	var want []engine.State
	engine.VisitChildren(engine.Initial(), func(s engine.State) { want = append(want, s) })
	require.Equal(t, uint64(len(want)), count)

	for i, expected := range want {
		addr := headerAddr + recordSize + i*recordSize
		assert.Equal(t, expected, b.getState(addr))
	}
}

func TestClearResetsCursorNotCapacity(t *testing.T) {
	b := New(4)
	b.WriteInitial()
	b.Clear()
	assert.Equal(t, 0, b.Cursor())
	assert.Len(t, b.BufferPtr(), 4*recordSize)
}

func TestOverflowPanics(t *testing.T) {
	b := New(1)
	b.WriteInitial()
	assert.Panics(t, func() { b.WriteInitial() })
}
