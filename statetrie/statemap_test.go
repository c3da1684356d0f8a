package statetrie

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dobutsusolver/dobutsu/engine"
)

func TestStateMapGetSet(t *testing.T) {
	m := NewStateMap[int](-1)
	s := engine.Initial()

	assert.Equal(t, -1, m.Get(s))
	m.Set(s, 42)
	assert.Equal(t, 42, m.Get(s))
	assert.Equal(t, 1, m.Len())
}

func TestStateMapVisitIsSortedAndComplete(t *testing.T) {
	m := NewStateMap[int](0)
	n := 0
	engine.VisitChildren(engine.Initial(), func(s engine.State) {
		n++
		m.Set(s, n)
	})

	var seen []engine.State
	m.Visit(func(s engine.State, v int) {
		assert.NotZero(t, v)
		seen = append(seen, s)
	})

	assert.Equal(t, m.Len(), len(seen))
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i-1], seen[i])
	}
}
