package solve

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

// recordSize is the width of one persisted record: a 40-bit state, a
// 16-bit packed stats field, and 8 bits of zero padding.
const recordSize = 8

// WriteSolutionFile writes the solved stats table to w as a flat,
// header-less sequence of 8-byte little-endian records, sorted
// ascending by state. Every reachable state is written; a reachable
// state with no stats makes it return an error instead of being
// skipped.
func WriteSolutionFile(w io.Writer, reachable *statetrie.StateSet, stats *statetrie.StateMap[engine.StateStats]) error {
	bw := bufio.NewWriter(w)
	var writeErr error
	reachable.Visit(func(s engine.State) {
		if writeErr != nil {
			return
		}
		st := stats.Get(s)
		if st.IsNull() {
			writeErr = errors.Errorf("no stats recorded for reachable state %v", s)
			return
		}
		var record [recordSize]byte
		binary.LittleEndian.PutUint64(record[:], uint64(s))
		binary.LittleEndian.PutUint16(record[5:7], st.PackedStats())
		if _, err := bw.Write(record[:]); err != nil {
			writeErr = errors.Wrap(err, "writing solution record")
		}
	})
	if writeErr != nil {
		return writeErr
	}
	return errors.Wrap(bw.Flush(), "flushing solution file")
}

// ReadSolutionFile reads back a file written by WriteSolutionFile into
// a fresh stats map keyed by state.
func ReadSolutionFile(r io.Reader) (*statetrie.StateMap[engine.StateStats], error) {
	stats := statetrie.NewStateMap[engine.StateStats](engine.NullStateStats)
	br := bufio.NewReader(r)
	var record [recordSize]byte
	for {
		_, err := io.ReadFull(br, record[:])
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading solution record")
		}
		s := engine.State(binary.LittleEndian.Uint64(record[:]) & ((1 << 40) - 1))
		packed := binary.LittleEndian.Uint16(record[5:7])
		stats.Set(s, engine.UnpackStats(packed))
	}
}
