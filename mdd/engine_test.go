package mdd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mddbb/examples"
	"github.com/katalvlaran/mddbb/mdd"
	"github.com/katalvlaran/mddbb/selector"
)

func newEngine() *mdd.Engine {
	return mdd.New(selector.SimpleVariableSelector{}, selector.RankMergeSelector{}, selector.RankDeleteSelector{})
}

func TestCompile_RejectsNilRoot(t *testing.T) {
	e := newEngine()
	_, err := e.Compile(examples.NewSumProblem(3), nil, 2, mdd.Restricted)
	require.ErrorIs(t, err, mdd.ErrNoRoot)
}

func TestCompile_RejectsBadWidth(t *testing.T) {
	e := newEngine()
	p := examples.NewSumProblem(3)
	root, err := p.Root()
	require.NoError(t, err)

	_, err = e.Compile(p, root, 0, mdd.Restricted)
	require.ErrorIs(t, err, mdd.ErrBadWidth)
}

func TestCompile_UnboundedWidthIsExactAndOptimal(t *testing.T) {
	e := newEngine()
	p := examples.NewSumProblem(3)
	root, err := p.Root()
	require.NoError(t, err)

	res, err := e.Compile(p, root, 8, mdd.Restricted)
	require.NoError(t, err)
	require.True(t, res.Exact)
	require.NotNil(t, res.Terminal)
	require.Equal(t, 3.0, res.Terminal.Value)
}

func TestCompile_RestrictedWidth1StillFeasible(t *testing.T) {
	e := newEngine()
	p := examples.NewSumProblem(3)
	root, err := p.Root()
	require.NoError(t, err)

	res, err := e.Compile(p, root, 1, mdd.Restricted)
	require.NoError(t, err)
	require.False(t, res.Exact)
	require.NotNil(t, res.Terminal)
	require.LessOrEqual(t, res.Terminal.Value, 3.0)
}

func TestCompile_RelaxedGivesUpperBoundAndCutset(t *testing.T) {
	e := newEngine()
	p := examples.NewSumProblem(3)
	root, err := p.Root()
	require.NoError(t, err)

	res, err := e.Compile(p, root, 1, mdd.Relaxed)
	require.NoError(t, err)
	require.False(t, res.Exact)
	require.NotNil(t, res.Terminal)
	require.GreaterOrEqual(t, res.Terminal.Value, 3.0)
	require.NotEmpty(t, res.Cutset)
	for _, c := range res.Cutset {
		require.True(t, c.Exact)
	}
}
