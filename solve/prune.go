package solve

import (
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

type queueItem struct {
	state  engine.State
	active engine.Player
}

// Prune returns the set of states reachable from initial on the
// assumption that optimalPlayer always plays their single best move
// (per bestChild) while the other player's move is unconstrained. Two
// visited-sets are kept, one per whichever player is to move, since a
// state can only be "once enqueued" from the perspective that matters
// for its own branching rule.
func Prune(
	initial engine.State,
	optimalPlayer engine.Player,
	bestChild *statetrie.StateMap[engine.State],
	onNodeProcessed func(engine.State),
) *statetrie.StateSet {
	onceOptimalActive := statetrie.NewStateSet()
	onceUnpredictableActive := statetrie.NewStateSet()

	if optimalPlayer == engine.PlayerSente {
		onceOptimalActive.Add(initial)
	} else {
		onceUnpredictableActive.Add(initial)
	}

	queue := []queueItem{{initial, engine.PlayerSente}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.active == optimalPlayer {
			child := bestChild.Get(item.state)
			if child == nullState {
				continue
			}
			if onceUnpredictableActive.Add(child) {
				continue
			}
			queue = append(queue, queueItem{child, item.active.Opponent()})
			report(onNodeProcessed, item.state)
			continue
		}

		if item.state.Terminality() == engine.Nonterminal {
			engine.VisitChildren(item.state, func(child engine.State) {
				if onceOptimalActive.Add(child) {
					return
				}
				queue = append(queue, queueItem{child, item.active.Opponent()})
			})
		}
		report(onNodeProcessed, item.state)
	}

	return onceOptimalActive.Union(onceUnpredictableActive)
}

func report(fn func(engine.State), s engine.State) {
	if fn != nil {
		fn(s)
	}
}
