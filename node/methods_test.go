package node_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mddbb/node"
	"github.com/katalvlaran/mddbb/state"
)

// fakeState is a minimal state.Representation for node-package tests; it
// carries no payload beyond an id, since these tests exercise Node's own
// bookkeeping, not state semantics.
type fakeState struct{ id int }

func (f *fakeState) Equal(other state.Representation) bool {
	o, ok := other.(*fakeState)
	return ok && o.id == f.id
}
func (f *fakeState) Hash() string                        { return "" }
func (f *fakeState) Clone() state.Representation         { return &fakeState{id: f.id} }
func (f *fakeState) Rank(ctx state.RankInput) float64     { return ctx.Value }

func TestNewRoot(t *testing.T) {
	root := node.NewRoot(&fakeState{}, 3)

	assert.Equal(t, 0, root.LayerNumber)
	assert.Equal(t, 0.0, root.Value)
	assert.True(t, math.IsInf(root.RelaxedValue, 1))
	assert.True(t, root.Exact)
	assert.Len(t, root.Variables, 3)
	assert.Equal(t, []int{0, 1, 2}, root.Indexes)
}

func TestSuccessor_RejectsWrongBranchingPos(t *testing.T) {
	root := node.NewRoot(&fakeState{}, 2)

	_, err := root.Successor(&fakeState{id: 1}, 1, 1, 0, 1)
	require.ErrorIs(t, err, node.ErrInconsistentLayer)
}

func TestSuccessor_BindsVariableAndAdvancesLayer(t *testing.T) {
	root := node.NewRoot(&fakeState{}, 2)

	child, err := root.Successor(&fakeState{id: 1}, 1, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, child.LayerNumber)
	assert.Equal(t, 1.0, child.Value)
	assert.True(t, child.Variables[0].Bound)
	assert.Equal(t, 1, child.Variables[0].Value)
	assert.False(t, child.Variables[1].Bound)
}

func TestPassThrough_AdvancesLayerWithoutBinding(t *testing.T) {
	root := node.NewRoot(&fakeState{}, 2)

	child, err := root.PassThrough(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, child.LayerNumber)
	assert.False(t, child.Variables[0].Bound)
}

func TestClone_IsIndependentDeepCopy(t *testing.T) {
	root := node.NewRoot(&fakeState{id: 7}, 1)
	clone := root.Clone()

	clone.Value = 99
	clone.Variables[0].Bound = true

	assert.Equal(t, 0.0, root.Value)
	assert.False(t, root.Variables[0].Bound)
}

func TestUnboundIDs(t *testing.T) {
	root := node.NewRoot(&fakeState{}, 3)
	child, err := root.Successor(&fakeState{id: 1}, 0, 0, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, child.UnboundIDs())
}

func TestMerge_TakesMaxValueAndANDsExact(t *testing.T) {
	a := node.NewRoot(&fakeState{}, 1)
	a.Value = 3
	a.Exact = true

	b := node.NewRoot(&fakeState{}, 1)
	b.Value = 5
	b.Exact = false

	a.Merge(b)
	assert.Equal(t, 5.0, a.Value)
	assert.False(t, a.Exact)
}
