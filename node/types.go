// Package node defines the MDD node type: a state representation, its
// longest-path value, the assignment prefix that reached it, and the
// exactness flag that the restriction/relaxation policies maintain.
//
// Sentinel errors and plain data types live here; operations live in
// methods.go.
package node

import (
	"errors"
	"math"

	"github.com/katalvlaran/mddbb/state"
)

// Sentinel errors for node construction and successor generation.
var (
	// ErrInconsistentLayer indicates a Problem or engine call tried to bind
	// a variable at a branching position other than the node's own frontier
	// (branchingPos != node.LayerNumber). This is a contract violation: a
	// Problem.Successors implementation produced a node whose layer depth
	// does not match parent.LayerNumber+1.
	ErrInconsistentLayer = errors.New("node: branching position does not match node frontier")

	// ErrVariableOutOfRange indicates a variable id outside [0, nVariables).
	ErrVariableOutOfRange = errors.New("node: variable id out of range")
)

// Variable is a single decision variable, identified by a stable id in
// [0, n). Bound is false until the single assignment transition occurs.
type Variable struct {
	// ID is the variable's stable identifier.
	ID int

	// Value is the assigned integer value; meaningless while Bound is false.
	Value int

	// Bound reports whether this variable has been assigned.
	Bound bool
}

// Node is a single vertex of an MDD layer: a state, the longest-path value
// of reaching that state, the relaxed upper bound inherited from a
// relaxed-MDD root, the assignment prefix, and the exactness flag.
//
// Invariants:
//   - LayerNumber equals the number of bound Variables.
//   - Value <= RelaxedValue.
//   - Exact == true implies Value is achievable by some real assignment.
type Node struct {
	// State is the opaque combinatorial payload.
	State state.Representation

	// Value is the longest-path value from the global root through this node.
	Value float64

	// RelaxedValue is the upper bound used by the Solver's priority queue.
	// Initialized to +Inf and tightened when inherited from a relaxed-MDD
	// root value (see solver's cutset enqueueing).
	RelaxedValue float64

	// Exact is true iff every path reaching this node went only through
	// exact (non-merged, non-deleted) transitions.
	Exact bool

	// Variables is the ordered sequence of decision variables, length ==
	// problem's nVariables. Entries at indices already bound by the
	// assignment prefix carry Bound == true.
	Variables []Variable

	// Indexes maps branching position -> variable id, so LayerNumber counts
	// assignments along this path.
	Indexes []int

	// LayerNumber is the depth of this node: the count of bound variables.
	LayerNumber int
}

// NewRoot builds the layer-0 node for a fresh compilation: state st, an
// unbound Variable sequence of length nVariables, an identity Indexes
// permutation (valid for any VariableSelector that binds ids in ascending
// order; a selector using dynamic reordering overwrites entries as it
// branches), Value 0, RelaxedValue +Inf, and Exact true.
func NewRoot(st state.Representation, nVariables int) *Node {
	vars := make([]Variable, nVariables)
	idx := make([]int, nVariables)
	for i := 0; i < nVariables; i++ {
		vars[i] = Variable{ID: i}
		idx[i] = i
	}

	return &Node{
		State:       st,
		Value:       0,
		RelaxedValue: math.Inf(1),
		Exact:       true,
		Variables:   vars,
		Indexes:     idx,
		LayerNumber: 0,
	}
}
