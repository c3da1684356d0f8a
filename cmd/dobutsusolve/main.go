// Command dobutsusolve computes the complete game-theoretic solution
// of Dōbutsu Shōgi and writes it to a solution file next to the
// executable.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/dobutsusolver/dobutsu/backward"
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/forward"
	"github.com/dobutsusolver/dobutsu/solve"
)

var output = flag.String("output", "", "solution file to write (default: solution.bin next to the executable)")

func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	path := *output
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			log.Fatalf("cannot locate executable: %v", err)
		}
		path = filepath.Join(filepath.Dir(exe), "solution.bin")
	}

	if err := solveAndWrite(path); err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
}

func solveAndWrite(path string) error {
	start := time.Now()

	reachableSet := forward.ReachableStateSet(engine.Initial(), nil)
	log.Printf("forward pass: %d reachable states in %v", reachableSet.Len(), time.Since(start))

	backStart := time.Now()
	stats := backward.InitialStatsMap(reachableSet)
	var progress backward.Progress
	backward.ComputeStats(reachableSet, stats, &progress)
	log.Printf("backward pass: %d queue pushes in %v", progress.QueuePushes, time.Since(backStart))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not write solution file %s", path)
	}
	defer f.Close()

	if err := solve.WriteSolutionFile(f, reachableSet, stats); err != nil {
		return errors.Wrap(err, "could not write solution file")
	}

	log.Printf("wrote %s in %v total", path, time.Since(start))
	return nil
}
