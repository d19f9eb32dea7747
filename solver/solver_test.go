package solver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mddbb/examples"
	"github.com/katalvlaran/mddbb/solver"
)

// TestSolve_ZeroVariables covers the n == 0 boundary: root() is its
// own terminal and Solve returns it immediately as optimal.
func TestSolve_ZeroVariables(t *testing.T) {
	p := examples.NewSumProblem(0)
	s := solver.New(p, solver.Options{})

	res, err := s.Solve()
	require.NoError(t, err)
	require.NotNil(t, res.Incumbent)
	assert.True(t, res.Optimal)
	assert.Equal(t, 0.0, res.LowerBound)
	assert.Equal(t, 0.0, res.UpperBound)
	assert.Equal(t, 0.0, res.Gap)
}

// TestSolve_Determinism checks that two runs over the same problem and
// options produce identical bounds and incumbent value.
func TestSolve_Determinism(t *testing.T) {
	p := examples.NewSumProblem(4)

	r1, err := solver.New(p, solver.Options{}).Solve()
	require.NoError(t, err)
	r2, err := solver.New(p, solver.Options{}).Solve()
	require.NoError(t, err)

	assert.Equal(t, r1.LowerBound, r2.LowerBound)
	assert.Equal(t, r1.UpperBound, r2.UpperBound)
	assert.Equal(t, r1.Incumbent.Value, r2.Incumbent.Value)
}

// TestSolve_TimeoutReturnsPromptly checks that an effectively-zero time
// budget returns quickly with either no incumbent or a suboptimal one,
// never blocking until the search exhausts itself.
func TestSolve_TimeoutReturnsPromptly(t *testing.T) {
	p := examples.NewSumProblem(20)
	s := solver.New(p, solver.Options{Width: 1, TimeLimit: time.Nanosecond})

	res, err := s.Solve()
	require.NoError(t, err)
	assert.False(t, res.Optimal)
	assert.Less(t, res.Elapsed, time.Second)
}

// TestSolve_DominancePruneNeverWorsensLowerBound covers the invariant that
// lowerBound is monotonically non-decreasing, observed here via the
// OnProgress hook.
func TestSolve_DominancePruneNeverWorsensLowerBound(t *testing.T) {
	p := examples.NewSumProblem(5)

	last := -1.0e18
	s := solver.New(p, solver.Options{
		OnProgress: func(pr solver.Progress) {
			assert.GreaterOrEqual(t, pr.LowerBound, last)
			last = pr.LowerBound
		},
	})

	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.LowerBound)
}
