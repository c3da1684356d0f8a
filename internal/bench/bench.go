// Tool bench benchmarks the Dōbutsu Shōgi engine's two hot loops: raw
// move generation (VisitChildren) and the forward pass's
// canonical-state BFS. It reports nodes and nodes/sec the same way the
// reference engine benchmark replayed famous games and reported
// nodes/sec, so that a regression in either hot loop shows up as a
// throughput number that moved, not just a correctness failure.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/forward"
)

var depth = flag.Int("depth", 6, "move-generation depth to search to")

// moveGenNodes walks the raw move tree (no canonicalization-based
// dedup) from s to the given depth and returns the number of nodes
// visited, the same metric a chess perft reports for a fixed depth.
func moveGenNodes(s engine.State, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if s.Terminality() != engine.Nonterminal {
		return 1
	}
	var n uint64
	engine.VisitChildren(s, func(child engine.State) {
		n += moveGenNodes(child, depth-1)
	})
	return n
}

// benchMoveGen times moveGenNodes from the initial position and
// returns the node count and nodes/sec.
func benchMoveGen(depth int) (uint64, float64) {
	start := time.Now()
	nodes := moveGenNodes(engine.Initial(), depth)
	elapsed := time.Since(start)
	return nodes, float64(nodes) / elapsed.Seconds()
}

// benchForwardPass times a full forward-pass reachable-state
// enumeration and returns the number of distinct canonical states
// found and the processing rate.
func benchForwardPass() (int, float64) {
	var processed uint64
	start := time.Now()
	reachable := forward.ReachableStates(engine.Initial(), func(engine.State) {
		processed++
	})
	elapsed := time.Since(start)
	return len(reachable), float64(processed) / elapsed.Seconds()
}

func main() {
	flag.Parse()

	nodes, nps := benchMoveGen(*depth)
	log.Printf("movegen depth=%d nodes=%d nps=%.0f\n", *depth, nodes, nps)
	fmt.Printf("movegen nodes %d\n", nodes)
	fmt.Printf("movegen  nps %.0f\n", nps)

	count, pps := benchForwardPass()
	log.Printf("forward pass states=%d processed/sec=%.0f\n", count, pps)
	fmt.Printf("forward states %d\n", count)
	fmt.Printf("forward  pps %.0f\n", pps)
}
