package engine

import "fmt"

// State is the canonical 40-bit encoding of a Dōbutsu Shōgi position,
// always expressed from the perspective of the player to move: that
// player's pieces are "active", the opponent's are "passive", and a
// piece captured into a player's hand keeps that player's allegiance
// bit cleared of any on-board meaning.
//
// The 40 bits are eight fixed-width piece fields, most-significant
// first: Chick0(6) Chick1(6) Elephant0(5) Elephant1(5) Giraffe0(5)
// Giraffe1(5) ActiveLion(4) PassiveLion(4). Each non-lion field packs
// a Coord plus an allegiance bit (and, for chicks, a promotion bit);
// each lion field is a bare Coord, since a lion's slot already fixes
// which side it belongs to.
type State uint64

const (
	basePassiveLion = 0
	baseActiveLion  = 4
	baseGiraffe1    = 8
	baseGiraffe0    = 13
	baseElephant1   = 18
	baseElephant0   = 23
	baseChick1      = 28
	baseChick0      = 34

	stateBits = 40
)

func bitsAt(w uint64, base, width uint) uint64 {
	return (w >> base) & (1<<width - 1)
}

func withBitsAt(w uint64, base, width uint, v uint64) uint64 {
	mask := uint64(1<<width-1) << base
	return (w &^ mask) | ((v << base) & mask)
}

// allegiance bit convention: 0 means the piece belongs to the active
// (to-move) player, 1 means it belongs to the passive player.
const (
	allegianceActive  = 0
	allegiancePassive = 1
)

func lionCoord(w uint64, base uint) Coord { return Coord(bitsAt(w, base, 4)) }

func withLionCoord(w uint64, base uint, c Coord) uint64 {
	return withBitsAt(w, base, 4, uint64(c))
}

func pieceCoord(w uint64, base uint) Coord         { return Coord(bitsAt(w, base, 4)) }
func pieceIsPassive(w uint64, base uint) bool      { return bitsAt(w, base+4, 1) == allegiancePassive }
func withPieceCoord(w uint64, base uint, c Coord) uint64 {
	return withBitsAt(w, base, 4, uint64(c))
}
func withPieceIsPassive(w uint64, base uint, passive bool) uint64 {
	v := uint64(allegianceActive)
	if passive {
		v = allegiancePassive
	}
	return withBitsAt(w, base+4, 1, v)
}

func chickCoord(w uint64, base uint) Coord    { return Coord(bitsAt(w, base+1, 4)) }
func chickIsPromoted(w uint64, base uint) bool { return bitsAt(w, base, 1) != 0 }
func chickIsPassive(w uint64, base uint) bool  { return bitsAt(w, base+5, 1) == allegiancePassive }

func withChickCoord(w uint64, base uint, c Coord) uint64 {
	return withBitsAt(w, base+1, 4, uint64(c))
}
func withChickPromoted(w uint64, base uint, promoted bool) uint64 {
	v := uint64(0)
	if promoted {
		v = 1
	}
	return withBitsAt(w, base, 1, v)
}
func withChickIsPassive(w uint64, base uint, passive bool) uint64 {
	v := uint64(allegianceActive)
	if passive {
		v = allegiancePassive
	}
	return withBitsAt(w, base+5, 1, v)
}

// PieceRef names one of the eight pieces in a State.
type PieceRef uint8

const (
	Chick0 PieceRef = iota
	Chick1
	Elephant0
	Elephant1
	Giraffe0
	Giraffe1
	ActiveLion
	PassiveLion
	numPieces
)

func (p PieceRef) Species() Species {
	switch p {
	case Chick0, Chick1:
		return SpeciesChick
	case Elephant0, Elephant1:
		return SpeciesElephant
	case Giraffe0, Giraffe1:
		return SpeciesGiraffe
	default:
		return SpeciesLion
	}
}

func (p PieceRef) String() string {
	switch p {
	case Chick0:
		return "Chick0"
	case Chick1:
		return "Chick1"
	case Elephant0:
		return "Elephant0"
	case Elephant1:
		return "Elephant1"
	case Giraffe0:
		return "Giraffe0"
	case Giraffe1:
		return "Giraffe1"
	case ActiveLion:
		return "ActiveLion"
	case PassiveLion:
		return "PassiveLion"
	default:
		return "PieceRef(?)"
	}
}

// PieceView is a decoded snapshot of one piece's placement.
type PieceView struct {
	Coord     Coord
	IsPassive bool
	Promoted  bool // only meaningful for chicks
}

// Piece returns the decoded placement of the given piece slot.
func (s State) Piece(p PieceRef) PieceView {
	w := uint64(s)
	switch p {
	case Chick0:
		return PieceView{chickCoord(w, baseChick0), chickIsPassive(w, baseChick0), chickIsPromoted(w, baseChick0)}
	case Chick1:
		return PieceView{chickCoord(w, baseChick1), chickIsPassive(w, baseChick1), chickIsPromoted(w, baseChick1)}
	case Elephant0:
		return PieceView{pieceCoord(w, baseElephant0), pieceIsPassive(w, baseElephant0), false}
	case Elephant1:
		return PieceView{pieceCoord(w, baseElephant1), pieceIsPassive(w, baseElephant1), false}
	case Giraffe0:
		return PieceView{pieceCoord(w, baseGiraffe0), pieceIsPassive(w, baseGiraffe0), false}
	case Giraffe1:
		return PieceView{pieceCoord(w, baseGiraffe1), pieceIsPassive(w, baseGiraffe1), false}
	case ActiveLion:
		return PieceView{lionCoord(w, baseActiveLion), false, false}
	case PassiveLion:
		return PieceView{lionCoord(w, basePassiveLion), true, false}
	default:
		panic(fmt.Sprintf("engine: invalid piece ref %d", p))
	}
}

// WithPiece returns a copy of s with the given piece slot set to v.
func (s State) WithPiece(p PieceRef, v PieceView) State {
	w := uint64(s)
	switch p {
	case Chick0:
		w = withChickCoord(w, baseChick0, v.Coord)
		w = withChickPromoted(w, baseChick0, v.Promoted)
		w = withChickIsPassive(w, baseChick0, v.IsPassive)
	case Chick1:
		w = withChickCoord(w, baseChick1, v.Coord)
		w = withChickPromoted(w, baseChick1, v.Promoted)
		w = withChickIsPassive(w, baseChick1, v.IsPassive)
	case Elephant0:
		w = withPieceCoord(w, baseElephant0, v.Coord)
		w = withPieceIsPassive(w, baseElephant0, v.IsPassive)
	case Elephant1:
		w = withPieceCoord(w, baseElephant1, v.Coord)
		w = withPieceIsPassive(w, baseElephant1, v.IsPassive)
	case Giraffe0:
		w = withPieceCoord(w, baseGiraffe0, v.Coord)
		w = withPieceIsPassive(w, baseGiraffe0, v.IsPassive)
	case Giraffe1:
		w = withPieceCoord(w, baseGiraffe1, v.Coord)
		w = withPieceIsPassive(w, baseGiraffe1, v.IsPassive)
	case ActiveLion:
		w = withLionCoord(w, baseActiveLion, v.Coord)
	case PassiveLion:
		w = withLionCoord(w, basePassiveLion, v.Coord)
	default:
		panic(fmt.Sprintf("engine: invalid piece ref %d", p))
	}
	return State(w)
}

// AllPieceRefs lists every piece slot in a fixed, stable order.
var AllPieceRefs = [...]PieceRef{
	Chick0, Chick1, Elephant0, Elephant1, Giraffe0, Giraffe1, ActiveLion, PassiveLion,
}

var speciesSlots = [...][2]PieceRef{
	SpeciesChick:     {Chick0, Chick1},
	SpeciesElephant:  {Elephant0, Elephant1},
	SpeciesGiraffe:   {Giraffe0, Giraffe1},
}

// Initial returns the canonical starting position, active-to-move.
func Initial() State {
	var s State
	s = s.WithPiece(ActiveLion, PieceView{Coord: MakeCoord(0, 1)})
	s = s.WithPiece(PassiveLion, PieceView{Coord: MakeCoord(3, 1), IsPassive: true})
	s = s.WithPiece(Elephant0, PieceView{Coord: MakeCoord(0, 0)})
	s = s.WithPiece(Elephant1, PieceView{Coord: MakeCoord(3, 2), IsPassive: true})
	s = s.WithPiece(Giraffe0, PieceView{Coord: MakeCoord(0, 2)})
	s = s.WithPiece(Giraffe1, PieceView{Coord: MakeCoord(3, 0), IsPassive: true})
	s = s.WithPiece(Chick0, PieceView{Coord: MakeCoord(1, 1)})
	s = s.WithPiece(Chick1, PieceView{Coord: MakeCoord(2, 1), IsPassive: true})
	return s.Canonicalize()
}

// Canonicalize puts s into the canonical form required by the trie and
// by equality comparisons: within each species the two slots are
// ordered ascending by raw field value, and the whole state is
// replaced by its horizontal mirror if that mirror sorts smaller.
func (s State) Canonicalize() State {
	s = s.sortSpeciesSlots()
	mirrored := s.mirrorHorizontally().sortSpeciesSlots()
	if mirrored < s {
		return mirrored
	}
	return s
}

func (s State) sortSpeciesSlots() State {
	for species := SpeciesChick; species <= SpeciesGiraffe; species++ {
		slots := speciesSlots[species]
		a, b := s.Piece(slots[0]), s.Piece(slots[1])
		if rawLess(b, a) {
			s = s.WithPiece(slots[0], b).WithPiece(slots[1], a)
		}
	}
	return s
}

// rawLess compares two piece views the same way their packed bits
// would compare, so that sortSpeciesSlots matches bit-level ordering
// regardless of how PieceView happens to be laid out in Go. It uses the
// chick layout (promotion bit lowest, then the coordinate, then the
// allegiance bit); Promoted is always false for elephants and giraffes,
// so the same packing also orders their 5-bit fields.
func rawLess(a, b PieceView) bool {
	pack := func(v PieceView) uint64 {
		x := uint64(v.Coord) << 1
		if v.IsPassive {
			x |= 1 << 5
		}
		if v.Promoted {
			x |= 1
		}
		return x
	}
	return pack(a) < pack(b)
}

func (s State) mirrorHorizontally() State {
	for _, p := range AllPieceRefs {
		v := s.Piece(p)
		v.Coord = mirrorCoord(v.Coord)
		s = s.WithPiece(p, v)
	}
	return s
}

// InvertActivePlayer returns the state as seen by the other player: an
// involution that flips every on-board coordinate 180 degrees, swaps
// the active/passive allegiance of every non-lion piece, and swaps the
// active and passive lion slots. Applying it twice returns the
// original (canonicalized) state.
func (s State) InvertActivePlayer() State {
	var out State
	out = out.WithPiece(ActiveLion, flip(s.Piece(PassiveLion), false))
	out = out.WithPiece(PassiveLion, flip(s.Piece(ActiveLion), true))
	for _, species := range []Species{SpeciesChick, SpeciesElephant, SpeciesGiraffe} {
		slots := speciesSlots[species]
		out = out.WithPiece(slots[0], flipAllegiance(s.Piece(slots[0])))
		out = out.WithPiece(slots[1], flipAllegiance(s.Piece(slots[1])))
	}
	return out.Canonicalize()
}

func flip(v PieceView, isPassive bool) PieceView {
	v.Coord = flipCoord(v.Coord)
	v.IsPassive = isPassive
	return v
}

func flipAllegiance(v PieceView) PieceView {
	v.Coord = flipCoord(v.Coord)
	v.IsPassive = !v.IsPassive
	return v
}

// Terminality classifies whether a state is a completed game.
type Terminality uint8

const (
	Nonterminal Terminality = iota
	// Win means the active player has already won: their lion stands on
	// the far rank, having reached it on their previous move and not
	// been captured since. The passive lion's placement is not examined.
	Win
	// Loss means the active player has already lost: their lion sits
	// in the opponent's hand, captured by the opponent's last move.
	Loss
)

// Terminality reports whether s represents a finished game, from the
// perspective of the player to move in s.
func (s State) Terminality() Terminality {
	active := s.Piece(ActiveLion)
	if active.Coord.InHand() {
		return Loss
	}
	if active.Coord.Row() == numRows-1 {
		return Win
	}
	return Nonterminal
}

func (s State) String() string {
	return fmt.Sprintf("State(0x%010x)", uint64(s)&(1<<stateBits-1))
}
