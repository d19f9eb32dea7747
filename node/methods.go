package node

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mddbb/state"
)

// Successor builds a new Node whose Variables sequence has
// variables[varID] := assignedValue, whose Value is newValue, and whose
// LayerNumber is branchingPos+1. branchingPos MUST equal n.LayerNumber (the
// node's own frontier); passing any other value is a contract violation
// and returns ErrInconsistentLayer rather
// than silently producing an inconsistent node.
//
// varID is the variable chosen by the VariableSelector for this branching
// position; that already-set check folds it into "indexes[pos]" before
// successor is called, which this implementation makes an explicit
// parameter since Go has no notion of a pre-mutated immutable slice.
func (n *Node) Successor(newState state.Representation, newValue float64, branchingPos, varID, assignedValue int) (*Node, error) {
	if branchingPos != n.LayerNumber {
		return nil, fmt.Errorf("%w: node at layer %d, got branchingPos %d", ErrInconsistentLayer, n.LayerNumber, branchingPos)
	}
	if varID < 0 || varID >= len(n.Variables) {
		return nil, fmt.Errorf("%w: %d", ErrVariableOutOfRange, varID)
	}

	vars := make([]Variable, len(n.Variables))
	copy(vars, n.Variables)
	vars[varID] = Variable{ID: varID, Value: assignedValue, Bound: true}

	idx := make([]int, len(n.Indexes))
	copy(idx, n.Indexes)
	idx[branchingPos] = varID

	return &Node{
		State:        newState,
		Value:        newValue,
		RelaxedValue: math.Inf(1),
		Exact:        n.Exact,
		Variables:    vars,
		Indexes:      idx,
		LayerNumber:  branchingPos + 1,
	}, nil
}

// PassThrough inserts a detached copy of n at branchingPos+1 unchanged,
// for the case where Problem.Successors returns an empty set: the
// branching position is consumed (LayerNumber advances) but no variable
// is actually bound, so the usual "LayerNumber == count of bound
// variables" invariant is knowingly relaxed for pass-through nodes.
// Alternative rejection semantics would change bound tightness and are
// deliberately avoided here.
func (n *Node) PassThrough(branchingPos, varID int) (*Node, error) {
	if branchingPos != n.LayerNumber {
		return nil, fmt.Errorf("%w: node at layer %d, got branchingPos %d", ErrInconsistentLayer, n.LayerNumber, branchingPos)
	}

	c := n.Clone()
	idx := make([]int, len(n.Indexes))
	copy(idx, n.Indexes)
	idx[branchingPos] = varID
	c.Indexes = idx
	c.LayerNumber = branchingPos + 1

	return c, nil
}

// Clone returns a deep copy of n, detaching its state representation,
// Variables, and Indexes from whatever arena produced them. Used to
// materialize cutset nodes so they survive the MDD's teardown.
func (n *Node) Clone() *Node {
	vars := make([]Variable, len(n.Variables))
	copy(vars, n.Variables)
	idx := make([]int, len(n.Indexes))
	copy(idx, n.Indexes)

	return &Node{
		State:        n.State.Clone(),
		Value:        n.Value,
		RelaxedValue: n.RelaxedValue,
		Exact:        n.Exact,
		Variables:    vars,
		Indexes:      idx,
		LayerNumber:  n.LayerNumber,
	}
}

// UnboundIDs returns the ids of variables not yet bound, in ascending order.
// All nodes within a single Layer share the same branching history (the MDD
// engine calls VariableSelector once per layer, not once per node), so any
// representative node's Variables slice yields the same unbound set.
func (n *Node) UnboundIDs() []int {
	ids := make([]int, 0, len(n.Variables)-n.LayerNumber)
	for _, v := range n.Variables {
		if !v.Bound {
			ids = append(ids, v.ID)
		}
	}

	return ids
}

// Merge folds other into n in place: value := max(value, other.value),
// exact := exact && other.exact. Used by Layer.Add when two nodes in the
// same layer share a state.
func (n *Node) Merge(other *Node) {
	if other.Value > n.Value {
		n.Value = other.Value
	}
	n.Exact = n.Exact && other.Exact
}

// RankInput builds the state.RankInput a Representation needs to score n.
func (n *Node) RankInput() state.RankInput {
	return state.RankInput{
		Value:        n.Value,
		RelaxedValue: n.RelaxedValue,
		LayerNumber:  n.LayerNumber,
	}
}
