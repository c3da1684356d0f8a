package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementTablesAreDual(t *testing.T) {
	for species := 0; species < 4; species++ {
		for p := 0; p < 2; p++ {
			dest := destBySquare[species][p]
			src := sourceBySquare[species][p]
			for from := Square(0); from < numSquares; from++ {
				for to := Square(0); to < numSquares; to++ {
					assert.Equal(t, dest[from].has(to), src[to].has(from),
						"species %d promoted=%d: dest[%d].has(%d) must equal src[%d].has(%d)",
						species, p, from, to, to, from)
				}
			}
		}
	}
}

func TestVisitChildrenAndVisitParentsAreDual(t *testing.T) {
	initial := Initial()
	var children []State
	VisitChildren(initial, func(child State) { children = append(children, child) })
	require := assert.New(t)
	require.NotEmpty(children)

	for _, child := range children {
		found := false
		VisitParents(child, func(parent State) {
			if parent == initial {
				found = true
			}
		})
		require.True(found, "initial state must be found as a parent of its own child %v", child)
	}
}

func TestSpeciesPairSlotsShareMoveSets(t *testing.T) {
	// Chick0/Chick1 (and the other species pairs) are interchangeable:
	// the movement tables are indexed by species alone, so a piece in
	// slot 0 and its slot-1 sibling always see the same destinations
	// from the same square.
	pairs := [][2]PieceRef{{Chick0, Chick1}, {Elephant0, Elephant1}, {Giraffe0, Giraffe1}}
	for _, pair := range pairs {
		assert.Equal(t, pair[0].Species(), pair[1].Species())
		for promotedIdx := 0; promotedIdx < 2; promotedIdx++ {
			for from := Square(0); from < numSquares; from++ {
				slot0Dest := destBySquare[pair[0].Species()][promotedIdx][from]
				slot1Dest := destBySquare[pair[1].Species()][promotedIdx][from]
				assert.Equal(t, slot0Dest, slot1Dest,
					"%v and %v must share destinations from square %v", pair[0], pair[1], from)
			}
		}
	}
}

func TestLionHasIdenticalPromotedAndUnpromotedMoveSets(t *testing.T) {
	assert.Equal(t, destBySquare[SpeciesLion][notPromoted], destBySquare[SpeciesLion][promoted],
		"lions never promote, so their two movement-table slots must agree")
}

func TestDropsOnlyTargetEmptySquares(t *testing.T) {
	s := emptyBoardState(MakeCoord(0, 1), MakeCoord(3, 1))
	s = s.WithPiece(Chick0, PieceView{Coord: HandCoord})

	VisitChildrenActions(s, func(a Action, child State) {
		if a.Piece != Chick0 {
			return
		}
		assert.NotEqual(t, uint8(HandCoord), uint8(a.Dest), "a drop must target a board square")
		_, occupied := squareOccupant(s, a.Dest.Square())
		assert.False(t, occupied, "a drop must target an empty square, not %v", a.Dest.Square())
	})
}
