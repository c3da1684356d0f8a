package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeOrdering(t *testing.T) {
	assert.True(t, LossIn(0).Less(Draw()))
	assert.True(t, Draw().Less(WinIn(5)))
	assert.True(t, WinIn(3).Less(WinIn(1)), "winning sooner ranks higher")
	assert.True(t, LossIn(1).Less(LossIn(5)), "losing later ranks higher")
}

// Two ParentView steps restore the outcome's kind; each step adds one
// ply, so a decisive outcome comes back two plies further away.
func TestOutcomeParentViewRoundTrips(t *testing.T) {
	for _, o := range []Outcome{WinIn(0), WinIn(7), LossIn(0), LossIn(3), Draw()} {
		back := o.ParentView().ParentView()
		assert.Equal(t, o.kind, back.kind)
		if !o.IsDraw() {
			assert.Equal(t, o.Plies()+2, back.Plies())
		}
	}
}

func TestParentViewFlipsWinsAndLosses(t *testing.T) {
	assert.True(t, WinIn(2).ParentView().IsLoss())
	assert.Equal(t, 3, WinIn(2).ParentView().Plies())

	assert.True(t, LossIn(4).ParentView().IsWin())
	assert.Equal(t, 5, LossIn(4).ParentView().Plies())

	assert.True(t, Draw().ParentView().IsDraw())
}
