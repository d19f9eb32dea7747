// Package problem declares the contract an embedding supplies to the MDD
// engine and Solver: a root node, the variable count, a successor
// function, and a merge function for relaxation. Concrete encodings
// (minla, examples) live outside this package — problem only names the
// interface, without committing to one concrete shape.
package problem

import "github.com/katalvlaran/mddbb/node"

// Problem is the external collaborator the MDD engine compiles against.
// Implementations MUST be pure with respect to external state: no hidden
// mutation across calls.
type Problem interface {
	// Root returns a fresh Node at LayerNumber 0 with an unbound Variable
	// sequence of length NVariables().
	Root() (*node.Node, error)

	// NVariables returns the (positive) number of decision variables.
	NVariables() int

	// Successors returns a finite ordered sequence of child nodes, one per
	// value `variable` may take from parent.State. Each returned node must
	// carry an updated state, a cumulative (longest-path) Value, and
	// LayerNumber == parent.LayerNumber+1; violating the latter is a
	// contract violation the engine rejects (node.ErrInconsistentLayer).
	//
	// An empty result is permitted and denotes a dead end; the engine
	// treats it as a no-op pass-through of the parent rather than a
	// rejection.
	Successors(parent *node.Node, variable int) ([]*node.Node, error)

	// Merge folds nodes (len >= 2) into one: Value is the maximum over the
	// inputs, Variables/Indexes match the best-value (maximum Value) input,
	// Exact is always false, and State is a sound over-approximation (e.g.
	// set union) of the inputs' states.
	Merge(nodes []*node.Node) (*node.Node, error)
}
