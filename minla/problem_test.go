package minla_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mddbb/examples"
	"github.com/katalvlaran/mddbb/minla"
	"github.com/katalvlaran/mddbb/solver"
)

// TestK3_OptimumMeetsImmediately covers a 3-clique with every weight 1:
// every permutation gives the same pairwise-distance sum (4), negated to
// a value of -4 under this package's maximization convention.
func TestK3_OptimumMeetsImmediately(t *testing.T) {
	p, err := examples.NewK3Problem()
	require.NoError(t, err)

	s := solver.New(p, solver.Options{})
	res, err := s.Solve()
	require.NoError(t, err)
	require.NotNil(t, res.Incumbent)
	require.True(t, res.Optimal)
	require.InDelta(t, -4.0, res.LowerBound, 1e-9)
}

// TestDisconnected_SumsComponentOptima covers two components with no
// inter-component edges: the optimum is the sum of each component's
// independently-verified optimum (2 + 7 = 9, negated).
func TestDisconnected_SumsComponentOptima(t *testing.T) {
	p, err := examples.NewDisconnectedProblem()
	require.NoError(t, err)

	s := solver.New(p, solver.Options{})
	res, err := s.Solve()
	require.NoError(t, err)
	require.NotNil(t, res.Incumbent)
	require.True(t, res.Optimal)
	require.InDelta(t, -9.0, res.LowerBound, 1e-9)
}

// TestNew_RejectsMalformedMatrices exercises the constructor's contract
// checks.
func TestNew_RejectsMalformedMatrices(t *testing.T) {
	_, err := minla.New(nil)
	require.ErrorIs(t, err, minla.ErrNoVertices)

	_, err = minla.New([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, minla.ErrRaggedWeights)

	_, err = minla.New([][]float64{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, minla.ErrAsymmetric)
}
