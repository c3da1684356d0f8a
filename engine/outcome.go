package engine

import "fmt"

// Outcome is the game-theoretic value of a state from the point of view
// of the player to move in that state: a forced win in some number of
// plies, a forced loss in some number of plies, or (if neither side can
// force a decision) a draw.
//
// Wins compare as "smaller ply count is better" (winning sooner is
// better) and losses compare as "larger ply count is better" (delaying
// a forced loss as long as possible is better); a draw sits strictly
// between every loss and every win. Outcome.Rank turns that three-way
// comparison into a single ordered integer so callers can just use <.
//
// spec.md leaves the exact ply-counting convention as an open
// implementation choice (it only requires this total order plus the
// ply-distance tiebreak); this package keeps sign and ply distance as
// separate fields instead of one packed arithmetic trick, since that
// keeps ParentView legible without reverse-engineering a combined
// negate-and-increment operation.
type Outcome struct {
	kind  outcomeKind
	plies uint8
}

type outcomeKind int8

const (
	kindLoss outcomeKind = -1
	kindDraw outcomeKind = 0
	kindWin  outcomeKind = 1
)

// MaxPlies bounds how many plies a forced outcome can be away; no
// reachable Dōbutsu Shōgi position needs anywhere near this many, but
// it bounds the 9-bit packed representation used for persistence.
const MaxPlies = 200

// Draw is the outcome of a position that is a draw under optimal play
// by both sides.
func Draw() Outcome { return Outcome{kindDraw, 0} }

// WinIn is the outcome of a position whose mover can force a win in
// exactly plies more moves.
func WinIn(plies int) Outcome { return Outcome{kindWin, clampPlies(plies)} }

// LossIn is the outcome of a position whose mover is forced to lose in
// exactly plies more moves, under the opponent's best play.
func LossIn(plies int) Outcome { return Outcome{kindLoss, clampPlies(plies)} }

func clampPlies(p int) uint8 {
	if p < 0 {
		p = 0
	}
	if p > MaxPlies {
		p = MaxPlies
	}
	return uint8(p)
}

// pessimisticGuess is the starting value assigned to every nonterminal
// state before the backward pass has processed any of its children: a
// loss as far away as representable, so that any real child report
// improves on it.
func pessimisticGuess() Outcome { return LossIn(MaxPlies) }

func (o Outcome) IsWin() bool  { return o.kind == kindWin }
func (o Outcome) IsLoss() bool { return o.kind == kindLoss }
func (o Outcome) IsDraw() bool { return o.kind == kindDraw }
func (o Outcome) Plies() int   { return int(o.plies) }

// Rank maps Outcome onto a totally ordered integer: larger is always
// better for the mover who owns the outcome.
func (o Outcome) Rank() int {
	switch o.kind {
	case kindWin:
		return MaxPlies + 1 - int(o.plies)
	case kindLoss:
		return -(MaxPlies + 1 - int(o.plies))
	default:
		return 0
	}
}

// Less reports whether o is worse for its owner than other.
func (o Outcome) Less(other Outcome) bool { return o.Rank() < other.Rank() }

// ParentView returns how a state's mover sees a child's outcome: the
// child's mover's win becomes the parent's loss one ply further away,
// and vice versa; a draw stays a draw.
func (o Outcome) ParentView() Outcome {
	switch o.kind {
	case kindWin:
		return LossIn(o.Plies() + 1)
	case kindLoss:
		return WinIn(o.Plies() + 1)
	default:
		return Draw()
	}
}

func (o Outcome) String() string {
	switch o.kind {
	case kindWin:
		return fmt.Sprintf("Win(%d)", o.plies)
	case kindLoss:
		return fmt.Sprintf("Loss(%d)", o.plies)
	default:
		return "Draw"
	}
}

// packedRank returns Outcome.Rank as a 16-bit two's-complement value;
// Rank's range [-201, 201] fits in the 9-bit width described in the
// data model.
func (o Outcome) packedRank() int16 { return int16(o.Rank()) }

// PackedStats encodes a StateStats as the 16-bit field stored
// alongside each state in the persisted solution file: the signed
// rank of the best known outcome, sign-extended to 16 bits. The report
// counter is not persisted: after the backward pass every outcome is
// final, although a state it leaves as a draw may still carry a
// positive counter, and UnpackStats always restores a zero counter.
func (s StateStats) PackedStats() uint16 {
	return uint16(s.BestKnownOutcome.packedRank())
}

// UnpackStats decodes a 16-bit persisted stats field back into an
// Outcome-bearing StateStats with a zero report counter.
func UnpackStats(packed uint16) StateStats {
	rank := int(int16(packed))
	var outcome Outcome
	switch {
	case rank > 0:
		outcome = WinIn(MaxPlies + 1 - rank)
	case rank < 0:
		outcome = LossIn(MaxPlies + 1 + rank)
	default:
		outcome = Draw()
	}
	return StateStats{BestKnownOutcome: outcome, RequiredChildReportCount: 0}
}

// StateStats is the per-state bookkeeping the backward pass maintains:
// the best outcome discovered so far (initialized to a pessimistic
// guess) and how many of the state's children still have to report
// before the outcome is provably correct. The same counter field also
// doubles, during the backward pass only, as the count of unresolved
// children; once it reaches zero the state's BestKnownOutcome is final.
type StateStats struct {
	BestKnownOutcome         Outcome
	RequiredChildReportCount int
}

// nullChildReportCount marks an absent StateMap entry; no real state
// has this many children (the true bound is 8*12=96).
const nullChildReportCount = 0xff

// NullStateStats is the sentinel "absent" value used by
// StateMap[StateStats], distinguishable from any real guess or
// concluded stats by its out-of-range counter.
var NullStateStats = StateStats{RequiredChildReportCount: nullChildReportCount}

func (s StateStats) IsNull() bool { return s.RequiredChildReportCount == nullChildReportCount }

// GuessStats returns the initial StateStats for a reachable state
// before any backward-pass processing: for a terminal state, the exact
// outcome with zero children left to hear from; for a nonterminal
// state, a pessimistic guess with childCount children left to hear from.
func GuessStats(s State, childCount int) StateStats {
	switch s.Terminality() {
	case Win:
		return StateStats{BestKnownOutcome: WinIn(0), RequiredChildReportCount: 0}
	case Loss:
		return StateStats{BestKnownOutcome: LossIn(0), RequiredChildReportCount: 0}
	default:
		return StateStats{BestKnownOutcome: pessimisticGuess(), RequiredChildReportCount: childCount}
	}
}
