// Package forward implements the forward pass: a breadth-first
// enumeration of every state reachable from the initial position.
package forward

import (
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

// ReachableStates returns every state reachable from initial, sorted
// ascending, by breadth-first search. onNodeProcessed (if non-nil) is
// called once per dequeued node, after its children have been
// enumerated, so callers can report progress without slowing down the
// hot loop with extra bookkeeping.
func ReachableStates(initial engine.State, onNodeProcessed func(engine.State)) []engine.State {
	return ReachableStateSet(initial, onNodeProcessed).SortedSlice()
}

// ReachableStateSet is ReachableStates, returning the backing trie
// directly instead of a flattened slice, for callers (the backward
// pass, the pruning pass) that need O(1) membership tests rather than
// a sorted sequence.
func ReachableStateSet(initial engine.State, onNodeProcessed func(engine.State)) *statetrie.StateSet {
	reachable := statetrie.NewStateSet()
	reachable.Add(initial)

	queue := make([]engine.State, 0, 1024)
	queue = append(queue, initial)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.Terminality() == engine.Nonterminal {
			engine.VisitChildren(node, func(child engine.State) {
				if !reachable.Add(child) {
					queue = append(queue, child)
				}
			})
		}

		if onNodeProcessed != nil {
			onNodeProcessed(node)
		}
	}

	return reachable
}
