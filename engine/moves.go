package engine

// Action names a single legal move: which piece moved (or was dropped)
// and which square it ended up on. Pack encodes it in 7 bits (3-bit
// piece index, 4-bit destination coordinate).
type Action struct {
	Piece PieceRef
	Dest  Coord
}

// Pack encodes the action as a single byte: piece index in the high
// 3 bits, destination coordinate in the low 4 bits.
func (a Action) Pack() uint8 { return uint8(a.Piece)<<4 | uint8(a.Dest) }

func isActivePiece(s State, p PieceRef) bool {
	if p == ActiveLion {
		return true
	}
	if p == PassiveLion {
		return false
	}
	return !s.Piece(p).IsPassive
}

func squareOccupant(s State, sq Square) (PieceRef, bool) {
	for _, p := range AllPieceRefs {
		v := s.Piece(p)
		if !v.Coord.InHand() && v.Coord.Square() == sq {
			return p, true
		}
	}
	return 0, false
}

func promotedIndex(promoted bool) int {
	if promoted {
		return 1
	}
	return 0
}

// VisitChildren calls visit once for every state reachable from s by a
// single legal move of the player to move in s, in a fixed deterministic
// order (piece slots in AllPieceRefs order, destinations in increasing
// Square order). Every call receives a distinct, already-canonicalized
// child; no child is ever repeated. A terminal s has no children.
func VisitChildren(s State, visit func(State)) {
	seen := make(map[State]bool)
	VisitChildrenActions(s, func(_ Action, child State) {
		if !seen[child] {
			seen[child] = true
			visit(child)
		}
	})
}

// VisitChildrenActions is VisitChildren plus the Action that produced
// each child, used by VisitParents to verify candidate parents. Unlike
// VisitChildren it reports every move, so a child reached by two
// different moves is reported once per move.
func VisitChildrenActions(s State, visit func(Action, State)) {
	if s.Terminality() != Nonterminal {
		return
	}
	for _, p := range AllPieceRefs {
		if p == PassiveLion || !isActivePiece(s, p) {
			continue
		}
		v := s.Piece(p)
		species := p.Species()

		if v.Coord.InHand() {
			if species == SpeciesLion {
				continue // lions are never held in hand to drop
			}
			for sq := Square(0); sq < numSquares; sq++ {
				if _, occupied := squareOccupant(s, sq); occupied {
					continue
				}
				child := s.WithPiece(p, PieceView{Coord: sq.Coord()})
				visit(Action{p, sq.Coord()}, child.InvertActivePlayer())
			}
			continue
		}

		fromSq := v.Coord.Square()
		dests := destBySquare[species][promotedIndex(v.Promoted)][fromSq]
		for toSq := Square(0); toSq < numSquares; toSq++ {
			if !dests.has(toSq) {
				continue
			}
			occupant, occupied := squareOccupant(s, toSq)
			if occupied && isActivePiece(s, occupant) {
				continue
			}

			child := s
			if occupied {
				child = child.WithPiece(occupant, PieceView{Coord: HandCoord})
			}

			newView := PieceView{Coord: toSq.Coord(), Promoted: v.Promoted}
			if species == SpeciesChick && toSq.Row() == numRows-1 {
				newView.Promoted = true
			}
			child = child.WithPiece(p, newView)

			action := Action{p, toSq.Coord()}
			visit(action, child.InvertActivePlayer())
		}
	}
}

// VisitParents calls visit once for every state from which s is
// reachable by a single legal move. Candidate predecessors are
// enumerated by reversing a move (unflip perspective, undo one piece's
// placement, optionally restore a captured piece) and each candidate is
// confirmed by running VisitChildren forward and checking that s is
// really among its children; this avoids needing an independent,
// error-prone reverse encoder for capture and promotion bookkeeping.
func VisitParents(s State, visit func(State)) {
	reported := make(map[State]bool)
	report := func(parent State) {
		if !reported[parent] {
			reported[parent] = true
			visit(parent)
		}
	}

	base := s.InvertActivePlayer()
	lionCaptured := base.Piece(PassiveLion).Coord.InHand()
	handOccupants := make([]PieceRef, 0, 4)
	for _, h := range AllPieceRefs {
		if h == ActiveLion || h == PassiveLion {
			continue
		}
		hv := base.Piece(h)
		if hv.Coord.InHand() && !hv.IsPassive {
			handOccupants = append(handOccupants, h)
		}
	}

	for _, p := range AllPieceRefs {
		if p == PassiveLion || !isActivePiece(base, p) {
			continue
		}
		v := base.Piece(p)
		if v.Coord.InHand() {
			continue // the mover's own piece never ends a move in hand
		}
		species := p.Species()
		toSq := v.Coord.Square()

		priors := make([]Coord, 0, numSquares+1)
		seen := make(map[Coord]bool)
		addPrior := func(c Coord) {
			if !seen[c] {
				seen[c] = true
				priors = append(priors, c)
			}
		}
		for fromSq := Square(0); fromSq < numSquares; fromSq++ {
			if sourceBySquare[species][notPromoted][toSq].has(fromSq) ||
				sourceBySquare[species][promoted][toSq].has(fromSq) {
				addPrior(fromSq.Coord())
			}
		}
		if species != SpeciesLion {
			addPrior(HandCoord)
		}

		promotedOptions := []bool{false}
		if species == SpeciesChick && v.Promoted {
			promotedOptions = []bool{true, false}
		}

		for _, priorCoord := range priors {
			for _, priorPromoted := range promotedOptions {
				candidate := base.WithPiece(p, PieceView{Coord: priorCoord, Promoted: priorPromoted})
				if lionCaptured {
					// s is a Loss: the move captured the passive lion on v.Coord.
					tryCandidate(candidate.WithPiece(PassiveLion, PieceView{Coord: v.Coord, IsPassive: true}), s, p, report)
					continue
				}
				tryCandidate(candidate, s, p, report)
				for _, h := range handOccupants {
					for _, wasHen := range []bool{false, true} {
						if wasHen && h.Species() != SpeciesChick {
							continue
						}
						uncaptured := candidate.WithPiece(h, PieceView{Coord: v.Coord, IsPassive: true, Promoted: wasHen})
						tryCandidate(uncaptured, s, p, report)
					}
				}
			}
		}
	}
}

// tryCandidate verifies that candidate is a genuine predecessor of
// want: it must itself be nonterminal (spec.md: "Predecessors that are
// themselves terminal are skipped") and a move of a piece of actor's
// species from candidate must actually produce want (canonicalization
// may have moved the actor into the other slot of its species pair).
func tryCandidate(candidate, want State, actor PieceRef, report func(State)) {
	canonical := candidate.Canonicalize()
	if canonical.Terminality() != Nonterminal {
		return
	}
	found := false
	VisitChildrenActions(canonical, func(a Action, child State) {
		if found || a.Piece.Species() != actor.Species() {
			return
		}
		if child == want {
			found = true
		}
	})
	if found {
		report(canonical)
	}
}
