package statetrie

import "github.com/dobutsusolver/dobutsu/engine"

type mapLeaf[V comparable] [16]V
type mapBin4[V comparable] [16]*mapLeaf[V]
type mapBin3[V comparable] [16]*mapBin4[V]
type mapBin2[V comparable] [16]*mapBin3[V]
type mapBin1[V comparable] [16]*mapBin2[V]
type mapBin0[V comparable] [16]*mapBin1[V]

// StateMap is a map keyed by State, using the same dense trie shape as
// StateSet. Absence is represented by a caller-supplied null value
// rather than a separate occupancy bit, the Go equivalent of the
// reference implementation's Null trait: Go generics have no way to
// ask a type parameter for a static "absent" constructor, so the
// caller provides one explicitly at construction time.
type StateMap[V comparable] struct {
	null V
	top  [topSize]*mapBin0[V]
	size int
}

// NewStateMap returns an empty StateMap whose absent entries read as null.
func NewStateMap[V comparable](null V) *StateMap[V] {
	return &StateMap[V]{null: null}
}

// Get returns the value stored for s, or the map's null value if absent.
func (m *StateMap[V]) Get(s engine.State) V {
	top, n0, n1, n2, n3, n4, n5 := keyNibbles(uint64(s))

	b0 := m.top[top]
	if b0 == nil {
		return m.null
	}
	b1 := b0[n0]
	if b1 == nil {
		return m.null
	}
	b2 := b1[n1]
	if b2 == nil {
		return m.null
	}
	b3 := b2[n2]
	if b3 == nil {
		return m.null
	}
	b4 := b3[n3]
	if b4 == nil {
		return m.null
	}
	leaf := b4[n4]
	if leaf == nil {
		return m.null
	}
	return leaf[n5]
}

// Set stores value for s, overwriting any previous value.
func (m *StateMap[V]) Set(s engine.State, value V) {
	top, n0, n1, n2, n3, n4, n5 := keyNibbles(uint64(s))

	b0 := &m.top[top]
	if *b0 == nil {
		*b0 = new(mapBin0[V])
	}
	b1 := &(*b0)[n0]
	if *b1 == nil {
		*b1 = new(mapBin1[V])
	}
	b2 := &(*b1)[n1]
	if *b2 == nil {
		*b2 = new(mapBin2[V])
	}
	b3 := &(*b2)[n2]
	if *b3 == nil {
		*b3 = new(mapBin3[V])
	}
	b4 := &(*b3)[n3]
	if *b4 == nil {
		*b4 = new(mapBin4[V])
	}
	leaf := &(*b4)[n4]
	if *leaf == nil {
		newLeaf := new(mapLeaf[V])
		for i := range newLeaf {
			newLeaf[i] = m.null
		}
		*leaf = newLeaf
	}

	if (*leaf)[n5] == m.null {
		m.size++
	}
	(*leaf)[n5] = value
}

// Len returns the number of non-null entries in the map.
func (m *StateMap[V]) Len() int { return m.size }

// Visit calls fn for every non-null entry, in ascending key order.
func (m *StateMap[V]) Visit(fn func(engine.State, V)) {
	for i0, b0 := range m.top {
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
							if leaf == nil {
								continue
							}
							prefix5 := prefix4 | uint64(i5)<<4
							for i6, v := range leaf {
								if v == m.null {
									continue
								}
								fn(engine.State(prefix5|uint64(i6)), v)
							}
						}
					}
				}
			}
		}
	}
}
