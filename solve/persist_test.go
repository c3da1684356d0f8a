package solve

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobutsusolver/dobutsu/backward"
	"github.com/dobutsusolver/dobutsu/engine"
	"github.com/dobutsusolver/dobutsu/statetrie"
)

func TestWriteAndReadSolutionFileRoundTrips(t *testing.T) {
	reachable := smallReachableSet(engine.Initial(), 3)
	stats := backward.InitialStatsMap(reachable)
	backward.ComputeStats(reachable, stats, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteSolutionFile(&buf, reachable, stats))
	assert.Zero(t, buf.Len()%recordSize)

	roundTripped, err := ReadSolutionFile(&buf)
	require.NoError(t, err)

	reachable.Visit(func(s engine.State) {
		want := stats.Get(s)
		got := roundTripped.Get(s)
		assert.Equal(t, want.BestKnownOutcome, got.BestKnownOutcome)
	})
}

func TestWriteSolutionFileRejectsMissingStats(t *testing.T) {
	reachable := smallReachableSet(engine.Initial(), 3)
	// An empty stats map: every reachable state is missing its entry.
	stats := statetrie.NewStateMap[engine.StateStats](engine.NullStateStats)

	var buf bytes.Buffer
	err := WriteSolutionFile(&buf, reachable, stats)
	assert.Error(t, err)
}
