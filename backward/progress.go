package backward

// Progress accumulates counters describing how the backward pass is
// proceeding, mirroring the bookkeeping kept by the reference
// retrograde-analysis implementation so a caller (typically a CLI) can
// report meaningful progress without re-deriving it from the queue.
type Progress struct {
	QueuePushes                int
	WinningParentConclusions   int
	LosingParentConclusions    int
	UncertainParentConclusions int
	UnreachableParentVisits    int
	AlreadySolvedParentVisits  int
	UnsolvedParentVisits       int
}
