// Package bridge exposes a fixed-capacity byte buffer that a web
// front-end can read with zero extra copies: every record is an
// 8-byte little-endian state, and the host reads buffer_ptr()/cursor()
// directly instead of going through a request/response API per move.
package bridge

import (
	"encoding/binary"
	"fmt"

	"github.com/dobutsusolver/dobutsu/engine"
)

const recordSize = 8

// Buffer is the buffer-mediated service described for the front-end:
// callers append records (an initial state, or a child-state listing)
// and the host reads them back by address.
type Buffer struct {
	data   []byte
	cursor int
}

// New allocates a buffer able to hold cap records of 8 bytes each.
func New(cap int) *Buffer {
	return &Buffer{data: make([]byte, cap*recordSize)}
}

// Clear resets the cursor to the start of the buffer without
// reallocating it.
func (b *Buffer) Clear() { b.cursor = 0 }

// Cursor returns the current write offset, in bytes.
func (b *Buffer) Cursor() int { return b.cursor }

// BufferPtr exposes the backing storage for zero-copy reads by the
// host; callers must not retain it past the next Clear.
func (b *Buffer) BufferPtr() []byte { return b.data }

func (b *Buffer) reserve(n int) int {
	start := b.cursor
	if start+n > len(b.data) {
		panic(fmt.Sprintf("bridge: buffer overflow writing %d bytes at offset %d of %d", n, start, len(b.data)))
	}
	b.cursor += n
	return start
}

func (b *Buffer) putState(offset int, s engine.State) {
	binary.LittleEndian.PutUint64(b.data[offset:offset+recordSize], uint64(s))
}

func (b *Buffer) getState(offset int) engine.State {
	return engine.State(binary.LittleEndian.Uint64(b.data[offset : offset+recordSize]))
}

// WriteInitial appends the initial state as one 8-byte record and
// returns its start address.
func (b *Buffer) WriteInitial() int {
	addr := b.reserve(recordSize)
	b.putState(addr, engine.Initial())
	return addr
}

// WriteChildren reads the state stored at addr, enumerates its
// children, and appends an 8-byte length header followed by each
// child as an 8-byte record. It returns the address of the length
// header so the host can locate the whole listing.
func (b *Buffer) WriteChildren(addr int) int {
	s := b.getState(addr)

	headerAddr := b.reserve(recordSize)
	count := 0
	engine.VisitChildren(s, func(child engine.State) {
		childAddr := b.reserve(recordSize)
		b.putState(childAddr, child)
		count++
	})
	binary.LittleEndian.PutUint64(b.data[headerAddr:headerAddr+recordSize], uint64(count))
	return headerAddr
}
