// Perft is a move-generation counting tool for the Dōbutsu Shōgi
// engine, the domain analogue of a chess perft: it walks the raw move
// tree (no canonical-state deduplication, unlike the forward pass) to
// depth d and reports how many leaf nodes, captures, drops and
// promotions occur along the way, the same per-depth table and
// captures/promotions bookkeeping as a chess perft's, with castling
// and en passant columns replaced by this game's own special moves
// (drops from hand, hen promotion) since neither castling nor en
// passant has an analogue here.
//
// Examples:
//
// Simple fast integration test:
//	$ go test github.com/dobutsusolver/dobutsu/perft
//
// From the initial position:
//	$ ./perft --max_depth 6
//	depth        nodes   captures      drops promotions   KNps   elapsed
//	-----+------------+----------+----------+----------+------+-------
//	    1            4          1          0          0     40 100µs
//	    2           17          5          0          0     85 200µs
//	    ...
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dobutsusolver/dobutsu/engine"
)

var (
	minDepth = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth = flag.Int("max_depth", 6, "maximum depth to search (inclusive)")
	depth    = flag.Int("depth", 0, "if non zero, searches only this depth")
)

// counters counts leaves, and move kinds seen immediately above the
// leaves, after walking the raw (non-deduplicated) move tree to some
// depth.
type counters struct {
	nodes      uint64
	captures   uint64
	drops      uint64
	promotions uint64
}

func (c *counters) add(o counters) {
	c.nodes += o.nodes
	c.captures += o.captures
	c.drops += o.drops
	c.promotions += o.promotions
}

// occupiedSquares returns the set of board squares occupied in s, used
// to tell a drop or a capturing board move apart from a quiet one
// without re-deriving the move that produced each child.
func occupiedSquares(s engine.State) map[engine.Square]bool {
	occ := make(map[engine.Square]bool, 8)
	for _, p := range engine.AllPieceRefs {
		v := s.Piece(p)
		if !v.Coord.InHand() {
			occ[v.Coord.Square()] = true
		}
	}
	return occ
}

// countHandPieces reports how many pieces (of any species, either
// allegiance) sit in hand in s.
func countHandPieces(s engine.State) int {
	n := 0
	for _, p := range engine.AllPieceRefs {
		if p == engine.ActiveLion || p == engine.PassiveLion {
			continue
		}
		if s.Piece(p).Coord.InHand() {
			n++
		}
	}
	return n
}

// Perft walks the move tree rooted at s to the given depth, without
// any canonical-state deduplication across paths (every path of
// VisitChildren steps is a distinct node, even if several paths reach
// the same canonical state), and tallies nodes/captures/drops/promotions the way a chess
// perft tallies captures/en-passant/castles/promotions.
func Perft(s engine.State, depth int) counters {
	if depth == 0 {
		return counters{nodes: 1}
	}
	if s.Terminality() != engine.Nonterminal {
		return counters{nodes: 1}
	}

	beforeOcc := occupiedSquares(s)
	beforeHand := countHandPieces(s)

	r := counters{}
	engine.VisitChildren(s, func(child engine.State) {
		if depth == 1 {
			afterOcc := occupiedSquares(child)
			if len(afterOcc) < len(beforeOcc) {
				r.captures++
			}
			if countHandPieces(child) < beforeHand {
				r.drops++
			}
			if sawNewPromotion(s, child) {
				r.promotions++
			}
		}
		r.add(Perft(child, depth-1))
	})
	return r
}

// sawNewPromotion reports whether child has a promoted chick where
// parent, restricted to the same species pair, did not — an
// approximation good enough for perft bookkeeping since both states
// are canonicalized and chick promotion is monotonic within one ply.
func sawNewPromotion(parent, child engine.State) bool {
	countPromoted := func(s engine.State) int {
		n := 0
		if s.Piece(engine.Chick0).Promoted {
			n++
		}
		if s.Piece(engine.Chick1).Promoted {
			n++
		}
		return n
	}
	return countPromoted(child) > countPromoted(parent)
}

func main() {
	flag.Parse()

	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	fmt.Printf("Searching from the initial position\n")
	fmt.Printf("depth        nodes   captures      drops promotions   KNps   elapsed\n")
	fmt.Printf("-----+------------+----------+----------+----------+------+-------\n")

	pos := engine.Initial()
	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := Perft(pos, d)
		elapsed := time.Since(start)

		fmt.Printf("   %2d %12d %10d %10d %10d %6.f %v\n",
			d, c.nodes, c.captures, c.drops, c.promotions,
			float64(c.nodes)/elapsed.Seconds()/1e3, elapsed)
	}
}
