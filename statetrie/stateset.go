// Package statetrie implements the dense trie used to store sets and
// maps keyed by a Dōbutsu Shōgi State's 40-bit canonical encoding.
//
// The 40 bits split as 16|4|4|4|4|4|4: a flat top-level array of
// 65536 entries, followed by five levels of 16-way branching pointer
// arrays, with the last 4 bits stored directly as a bit inside a
// 16-bit leaf. Because the branching order matches the key's bit
// order, walking the trie in array-index order visits every key in
// ascending numeric order for free; no separate sort step is needed.
package statetrie

import "github.com/dobutsusolver/dobutsu/engine"

const (
	topBits = 16
	topSize = 1 << topBits
)

type setLeaf [16]uint16
type setBin3 [16]*setLeaf
type setBin2 [16]*setBin3
type setBin1 [16]*setBin2
type setBin0 [16]*setBin1

// StateSet is a set of States, represented as a dense 7-level trie.
type StateSet struct {
	top [topSize]*setBin0
	size int
}

// NewStateSet returns an empty StateSet.
func NewStateSet() *StateSet {
	return &StateSet{}
}

func keyNibbles(k uint64) (top uint32, n0, n1, n2, n3, n4, n5 uint8) {
	k &= 1<<40 - 1
	top = uint32(k >> 24)
	n0 = uint8((k >> 20) & 0xf)
	n1 = uint8((k >> 16) & 0xf)
	n2 = uint8((k >> 12) & 0xf)
	n3 = uint8((k >> 8) & 0xf)
	n4 = uint8((k >> 4) & 0xf)
	n5 = uint8(k & 0xf)
	return
}

// Add inserts s and reports whether it was already present.
func (set *StateSet) Add(s engine.State) (alreadyPresent bool) {
	top, n0, n1, n2, n3, n4, n5 := keyNibbles(uint64(s))

	b0 := &set.top[top]
	if *b0 == nil {
		*b0 = new(setBin0)
	}
	b1 := &(*b0)[n0]
	if *b1 == nil {
		*b1 = new(setBin1)
	}
	b2 := &(*b1)[n1]
	if *b2 == nil {
		*b2 = new(setBin2)
	}
	b3 := &(*b2)[n2]
	if *b3 == nil {
		*b3 = new(setBin3)
	}
	b4 := &(*b3)[n3]
	if *b4 == nil {
		*b4 = new(setLeaf)
	}

	mask := uint16(1) << n5
	alreadyPresent = (*b4)[n4]&mask != 0
	(*b4)[n4] |= mask
	if !alreadyPresent {
		set.size++
	}
	return alreadyPresent
}

// Contains reports whether s is in the set.
func (set *StateSet) Contains(s engine.State) bool {
	top, n0, n1, n2, n3, n4, n5 := keyNibbles(uint64(s))

	b0 := set.top[top]
	if b0 == nil {
		return false
	}
	b1 := b0[n0]
	if b1 == nil {
		return false
	}
	b2 := b1[n1]
	if b2 == nil {
		return false
	}
	b3 := b2[n2]
	if b3 == nil {
		return false
	}
	b4 := b3[n3]
	if b4 == nil {
		return false
	}
	return b4[n4]&(uint16(1)<<n5) != 0
}

// Len returns the number of distinct states in the set.
func (set *StateSet) Len() int { return set.size }

// Visit calls fn once for every state in the set, in ascending order.
func (set *StateSet) Visit(fn func(engine.State)) {
	for i0, b0 := range set.top {
		if b0 == nil {
			continue
		}
		prefix0 := uint64(i0) << 24
		for i1, b1 := range b0 {
			if b1 == nil {
				continue
			}
			prefix1 := prefix0 | uint64(i1)<<20
			for i2, b2 := range b1 {
				if b2 == nil {
					continue
				}
				prefix2 := prefix1 | uint64(i2)<<16
				for i3, b3 := range b2 {
					if b3 == nil {
						continue
					}
					prefix3 := prefix2 | uint64(i3)<<12
					for i4, b4 := range b3 {
						if b4 == nil {
							continue
						}
						prefix4 := prefix3 | uint64(i4)<<8
						for i5, leaf := range b4 {
							prefix5 := prefix4 | uint64(i5)<<4
							for i6 := 0; i6 < 16; i6++ {
								if leaf&(uint16(1)<<i6) != 0 {
									fn(engine.State(prefix5 | uint64(i6)))
								}
							}
						}
					}
				}
			}
		}
	}
}

// SortedSlice returns every state in the set as a slice in ascending order.
func (set *StateSet) SortedSlice() []engine.State {
	out := make([]engine.State, 0, set.size)
	set.Visit(func(s engine.State) { out = append(out, s) })
	return out
}

// Union returns a new set containing every state in set or other.
func (set *StateSet) Union(other *StateSet) *StateSet {
	result := NewStateSet()
	set.Visit(func(s engine.State) { result.Add(s) })
	other.Visit(func(s engine.State) { result.Add(s) })
	return result
}
