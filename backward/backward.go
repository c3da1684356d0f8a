// Package backward implements the backward pass: retrograde analysis
// over the reachable-state set, computing every state's exact
// game-theoretic outcome by propagating terminal outcomes parent-ward.
package backward

import (
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

// InitialStatsMap assigns every reachable state its starting StateStats:
// terminal states get their exact, final outcome; nonterminal states
// get a pessimistic guess and a required-child-report count equal to
// their number of distinct children, as VisitChildren reports them.
func InitialStatsMap(reachable *statetrie.StateSet) *statetrie.StateMap[engine.StateStats] {
	stats := statetrie.NewStateMap[engine.StateStats](engine.NullStateStats)
	reachable.Visit(func(s engine.State) {
		childCount := 0
		if s.Terminality() == engine.Nonterminal {
			engine.VisitChildren(s, func(engine.State) { childCount++ })
		}
		stats.Set(s, engine.GuessStats(s, childCount))
	})
	return stats
}

// ComputeStats runs retrograde analysis to completion: every
// reachable state ends up with its exact outcome, except for states
// from which neither side can force a decision, which are left as
// draws once the queue drains with their required-child-report count
// still positive.
func ComputeStats(reachable *statetrie.StateSet, stats *statetrie.StateMap[engine.StateStats], progress *Progress) {
	queue := make([]engine.State, 0, 1024)

	reachable.Visit(func(s engine.State) {
		if s.Terminality() != engine.Nonterminal {
			queue = append(queue, s)
			bump(progress, func(p *Progress) { p.QueuePushes++ })
		}
	})

	for len(queue) > 0 {
		child := queue[0]
		queue = queue[1:]

		childOutcome := stats.Get(child).BestKnownOutcome
		parentView := childOutcome.ParentView()

		engine.VisitParents(child, func(parent engine.State) {
			if !reachable.Contains(parent) {
				bump(progress, func(p *Progress) { p.UnreachableParentVisits++ })
				return
			}

			ps := stats.Get(parent)
			if ps.IsNull() {
				bump(progress, func(p *Progress) { p.UnreachableParentVisits++ })
				return
			}
			if ps.RequiredChildReportCount == 0 {
				bump(progress, func(p *Progress) { p.AlreadySolvedParentVisits++ })
				return
			}
			bump(progress, func(p *Progress) { p.UnsolvedParentVisits++ })

			if parentView.IsWin() {
				ps.BestKnownOutcome = parentView
				ps.RequiredChildReportCount = 0
				stats.Set(parent, ps)
				queue = append(queue, parent)
				bump(progress, func(p *Progress) {
					p.WinningParentConclusions++
					p.QueuePushes++
				})
				return
			}

			if parentView.Rank() > ps.BestKnownOutcome.Rank() {
				ps.BestKnownOutcome = parentView
			}
			ps.RequiredChildReportCount--
			stats.Set(parent, ps)

			if ps.RequiredChildReportCount == 0 {
				queue = append(queue, parent)
				bump(progress, func(p *Progress) {
					p.LosingParentConclusions++
					p.QueuePushes++
				})
			} else {
				bump(progress, func(p *Progress) { p.UncertainParentConclusions++ })
			}
		})
	}

	// Any reachable state whose counter never reached zero never saw
	// a conclusive child report on either side: no line from it forces
	// a decision, so it is a draw under optimal play.
	reachable.Visit(func(s engine.State) {
		st := stats.Get(s)
		if !st.IsNull() && st.RequiredChildReportCount > 0 {
			st.BestKnownOutcome = engine.Draw()
			stats.Set(s, st)
		}
	})
}

func bump(progress *Progress, fn func(*Progress)) {
	if progress != nil {
		fn(progress)
	}
}
