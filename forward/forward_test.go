package forward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobutsusolver/dobutsu/engine"
)

func TestReachableStatesIsSortedAndDeduplicated(t *testing.T) {
	reachable := ReachableStates(engine.Initial(), nil)
	require.NotEmpty(t, reachable)

	seen := make(map[engine.State]bool, len(reachable))
	for i, s := range reachable {
		assert.False(t, seen[s], "state %v reported twice", s)
		seen[s] = true
		if i > 0 {
			assert.Less(t, reachable[i-1], s)
		}
	}
}

func TestReachableStatesIsClosedUnderVisitChildren(t *testing.T) {
	reachable := ReachableStates(engine.Initial(), nil)
	index := make(map[engine.State]bool, len(reachable))
	for _, s := range reachable {
		index[s] = true
	}

	for _, s := range reachable {
		engine.VisitChildren(s, func(child engine.State) {
			assert.True(t, index[child], "child %v of reachable state %v is itself unreachable", child, s)
		})
	}
}

func TestReachableStateCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full enumeration is expensive; skipped in -short mode")
	}
	// The exact count is a large, slow-to-compute snapshot; this test
	// is intentionally left as a placeholder for that golden value
	// once a full solve has been run and recorded.
	t.Skip("golden reachable-state count not yet recorded")
}
