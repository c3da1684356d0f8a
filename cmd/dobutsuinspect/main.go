// Command dobutsuinspect loads a solution file produced by
// dobutsusolve and pretty-prints the solved outcome of one state, or
// of the initial position if none is given.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/pretty"
	"github.com/dobutsusolver/dobutsu/solve"
)

var (
	solution = flag.String("solution", "solution.bin", "solution file to read")
	state    = flag.Uint64("state", 0, "raw 40-bit state to inspect (default: the initial position)")
	useState = flag.Bool("use_state", false, "inspect -state instead of the initial position")
)

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	f, err := os.Open(*solution)
	if err != nil {
		log.Fatalf("cannot open %s for reading: %v", *solution, err)
	}
	defer f.Close()

	stats, err := solve.ReadSolutionFile(f)
	if err != nil {
		log.Fatalf("cannot read solution file %s: %v", *solution, err)
	}

	s := engine.Initial()
	if *useState {
		s = engine.State(*state)
	}

	st := stats.Get(s)
	if st.IsNull() {
		log.Fatalf("state %v is not present in %s", s, *solution)
	}

	os.Stdout.WriteString(pretty.StateStats(s, st))
}
