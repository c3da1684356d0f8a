// Package solve computes the best-response map for every reachable
// state and the pruned subgraph reachable when one player is assumed
// to play optimally.
package solve

import (
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

// nullState is the sentinel "no best child" value: the all-zero State
// never arises from Initial or any legal move, since no real position
// has every piece stacked on the same square, so it is safe to reuse
// as a Null marker for StateMap[engine.State].
const nullState engine.State = 0

// BestChildMap picks, for every state with known stats, the child
// whose own outcome is worst for the child's mover -- equivalently,
// best for the parent who just moved into it -- breaking ties in
// favor of whichever qualifying child was visited first.
func BestChildMap(reachable *statetrie.StateSet, stats *statetrie.StateMap[engine.StateStats]) *statetrie.StateMap[engine.State] {
	best := statetrie.NewStateMap[engine.State](nullState)

	reachable.Visit(func(s engine.State) {
		if s.Terminality() != engine.Nonterminal {
			return // terminal states have no children, so no entry
		}

		var bestChild engine.State
		haveBest := false
		bestRank := 0

		engine.VisitChildren(s, func(child engine.State) {
			rank := engine.Draw().Rank()
			if childStats := stats.Get(child); !childStats.IsNull() {
				rank = childStats.BestKnownOutcome.Rank()
			}
			if !haveBest || rank < bestRank {
				bestChild, bestRank, haveBest = child, rank, true
			}
		})

		if haveBest {
			best.Set(s, bestChild)
		}
	})

	return best
}
