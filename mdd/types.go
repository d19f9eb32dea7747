// Package mdd compiles a Problem into a bounded-width multi-valued decision
// diagram, in either restricted (delete-based, feasible) or relaxed
// (merge-based, upper-bounding) mode, and extracts the exact cutset of a
// relaxed compilation for the Solver to branch on.
//
// Structurally this is a dedicated engine struct holding the policy
// objects (rather than closures), a tight compile loop, and
// deterministic tie-breaks throughout.
package mdd

import (
	"errors"

	"github.com/katalvlaran/mddbb/node"
)

// Mode selects whether Compile restricts (deletes) or relaxes (merges)
// layers that exceed the width bound.
type Mode int

const (
	// Restricted drops nodes via DeleteSelector when width > W, producing a
	// feasible but possibly suboptimal solution.
	Restricted Mode = iota

	// Relaxed merges nodes via MergeSelector when width > W, producing an
	// over-approximation (an upper bound).
	Relaxed
)

// String renders the Mode for logging.
func (m Mode) String() string {
	switch m {
	case Restricted:
		return "restricted"
	case Relaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Sentinel errors surfaced by Compile; these are contract violations from a
// malformed Problem or Selector, not runtime conditions a caller can retry
// past.
var (
	// ErrNoRoot indicates Compile was called with a nil root node.
	ErrNoRoot = errors.New("mdd: root node is nil")

	// ErrBadWidth indicates a non-positive width bound.
	ErrBadWidth = errors.New("mdd: width must be >= 1")

	// ErrEmptyTerminal names a compilation that ends with no terminal node.
	// Compile never returns it: an empty final layer is reported as
	// Result.Terminal == nil, and Compile does not check NVariables() (with
	// NVariables() <= root.LayerNumber the root itself is the terminal).
	ErrEmptyTerminal = errors.New("mdd: compilation produced no terminal node")
)

// Result is the outcome of a single Compile call.
type Result struct {
	// Terminal is the best node in the final layer, or nil if that layer
	// is empty. A dead end (Successors returning no children) does not
	// empty a layer: Compile passes the parent through to the next layer.
	Terminal *node.Node

	// Cutset is the deepest layer that was fully exact, as detached
	// (deep-copied) nodes. Only meaningful for Relaxed compiles; Restricted
	// compiles leave it nil.
	Cutset []*node.Node

	// Exact is true iff no restriction or relaxation occurred during this
	// compilation — equivalently, the MDD's isExact flag at termination.
	Exact bool
}
