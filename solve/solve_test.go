package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dobutsusolver/dobutsu/backward"
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

func smallReachableSet(initial engine.State, maxDepth int) *statetrie.StateSet {
	set := statetrie.NewStateSet()
	set.Add(initial)
	frontier := []engine.State{initial}
	for depth := 0; depth < maxDepth; depth++ {
		var next []engine.State
		for _, s := range frontier {
			if s.Terminality() != engine.Nonterminal {
				continue
			}
			engine.VisitChildren(s, func(child engine.State) {
				if !set.Add(child) {
					next = append(next, child)
				}
			})
		}
		frontier = next
	}
	return set
}

func TestBestChildMapOnlyPicksRealChildren(t *testing.T) {
	reachable := smallReachableSet(engine.Initial(), 3)
	stats := backward.InitialStatsMap(reachable)
	backward.ComputeStats(reachable, stats, nil)
	best := BestChildMap(reachable, stats)

	reachable.Visit(func(s engine.State) {
		child := best.Get(s)
		if child == nullState {
			return
		}
		found := false
		engine.VisitChildren(s, func(c engine.State) {
			if c == child {
				found = true
			}
		})
		assert.True(t, found, "best child %v of %v is not actually a legal child", child, s)
	})
}

func TestPruneStaysWithinReachableSet(t *testing.T) {
	reachable := smallReachableSet(engine.Initial(), 3)
	stats := backward.InitialStatsMap(reachable)
	backward.ComputeStats(reachable, stats, nil)
	best := BestChildMap(reachable, stats)

	pruned := Prune(engine.Initial(), engine.PlayerSente, best, nil)

	// The toy set stops at ply 3, but Prune expands every child of the
	// unconstrained side's ply-3 states, so its walk reaches ply 4 (where
	// the best-child map has no entries and it stops).
	within := smallReachableSet(engine.Initial(), 4)
	pruned.Visit(func(s engine.State) {
		assert.True(t, within.Contains(s), "pruned set contains state %v outside the reachable set", s)
	})
}
