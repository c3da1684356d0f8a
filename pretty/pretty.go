// Package pretty renders states and their solved stats as indented
// text boards, the Go equivalent of the reference implementation's
// Pretty/Indented wrapper types, in the spirit of zurichess's own
// position-printing helpers.
package pretty

import (
	"fmt"
	"strings"

	"github.com/dobutsusolver/dobutsu/engine"
)

var speciesLetter = map[engine.Species]string{
	engine.SpeciesChick:    "C",
	engine.SpeciesElephant: "E",
	engine.SpeciesGiraffe:  "G",
	engine.SpeciesLion:     "L",
}

type cellGlyph struct {
	letter    string
	isPassive bool
	promoted  bool
}

// Board renders the 4x3 board as a multi-line string, active player's
// pieces in upper case, passive player's in lower case, with a
// trailing "+" on a promoted chick.
func Board(s engine.State) string {
	var grid [4][3]*cellGlyph
	for _, p := range engine.AllPieceRefs {
		v := s.Piece(p)
		if v.Coord.InHand() {
			continue
		}
		g := &cellGlyph{letter: speciesLetter[p.Species()], isPassive: v.IsPassive, promoted: v.Promoted}
		grid[v.Coord.Row()][v.Coord.Col()] = g
	}

	var b strings.Builder
	for row := 3; row >= 0; row-- {
		for col := 0; col < 3; col++ {
			g := grid[row][col]
			if g == nil {
				b.WriteString(" .")
				continue
			}
			letter := g.letter
			if g.isPassive {
				letter = strings.ToLower(letter)
			}
			if g.promoted {
				letter += "+"
			} else {
				letter += " "
			}
			b.WriteByte(' ')
			b.WriteString(letter)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Hands renders the contents of each player's hand.
func Hands(s engine.State) string {
	active := hand(s, false)
	passive := hand(s, true)
	return fmt.Sprintf("active hand: %s\npassive hand: %s\n", active, passive)
}

func hand(s engine.State, passive bool) string {
	var pieces []string
	for _, p := range engine.AllPieceRefs {
		if p == engine.ActiveLion || p == engine.PassiveLion {
			continue
		}
		v := s.Piece(p)
		if v.Coord.InHand() && v.IsPassive == passive {
			pieces = append(pieces, speciesLetter[p.Species()])
		}
	}
	if len(pieces) == 0 {
		return "(empty)"
	}
	return strings.Join(pieces, " ")
}

// State renders a full human-readable summary of s: board, hands, and
// terminality.
func State(s engine.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Board(s))
	fmt.Fprint(&b, Hands(s))
	fmt.Fprintf(&b, "terminality: %v\n", s.Terminality())
	return b.String()
}

// StateStats renders a state together with its solved outcome, for the
// inspection CLI.
func StateStats(s engine.State, stats engine.StateStats) string {
	var b strings.Builder
	fmt.Fprint(&b, State(s))
	fmt.Fprintf(&b, "best known outcome: %v\n", stats.BestKnownOutcome)
	fmt.Fprintf(&b, "required child report count: %d\n", stats.RequiredChildReportCount)
	return b.String()
}
