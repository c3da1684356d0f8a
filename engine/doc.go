// Package engine implements the core data model and move engine for an
// exact solver of Dōbutsu Shōgi, the 3x4 reduced shogi variant played with
// a Lion, a Chick, an Elephant and a Giraffe per side.
//
// A position is represented as a canonical 40-bit State: the board and
// both players' hands, always encoded from the perspective of the side
// to move. Two adjacent positions related by a legal move are connate
// states in the sense that one is reachable from the other by exactly
// one ply; the package's job is to make that one-ply relation cheap to
// enumerate in both directions (VisitChildren, VisitParents) and cheap
// to store (the 40-bit encoding fits in a single machine word with
// plenty of room for bookkeeping).
//
// The retrograde backward pass keeps its per-state bookkeeping outside
// the State, in a StateStats value (an Outcome plus a child-report
// counter); a State never carries it.
package engine
