// Package minla implements the Minimum Linear Arrangement problem as a
// problem.Problem: assign each vertex of a weighted graph to a distinct
// position in [0, n) minimizing the sum, over edges, of weight * the
// positions' distance. The solver only maximizes, so costs are negated:
// Node.Value accumulates the running arrangement cost as a negative
// number, and the optimum MinLA cost is -lowerBound.
//
// Shaped like a weighted-instance branch-and-bound problem: a plain
// distance matrix as input, and the documented successor cost model
// below.
package minla

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mddbb/node"
)

// Errors returned by New for a malformed instance.
var (
	ErrNoVertices     = errors.New("minla: graph has no vertices")
	ErrTooManyVertices = errors.New("minla: graph exceeds the 64-vertex limit")
	ErrRaggedWeights  = errors.New("minla: weight matrix is not square")
	ErrAsymmetric     = errors.New("minla: weight matrix is not symmetric")
)

// Problem is a Minimum Linear Arrangement instance over n vertices with a
// symmetric, non-negative weight matrix (0 meaning "no edge").
type Problem struct {
	n      int
	weight [][]float64
}

// New validates weight (an n x n symmetric matrix) and returns a Problem.
func New(weight [][]float64) (*Problem, error) {
	n := len(weight)
	if n == 0 {
		return nil, ErrNoVertices
	}
	if n > 64 {
		return nil, ErrTooManyVertices
	}
	for i, row := range weight {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedWeights, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if weight[i][j] != weight[j][i] {
				return nil, fmt.Errorf("%w: weight[%d][%d]=%v != weight[%d][%d]=%v", ErrAsymmetric, i, j, weight[i][j], j, i, weight[j][i])
			}
		}
	}

	return &Problem{n: n, weight: weight}, nil
}

// Root returns the layer-0 node: no vertex placed, every position free,
// running cost 0.
func (p *Problem) Root() (*node.Node, error) {
	return node.NewRoot(newRep(p.n), p.n), nil
}

// NVariables returns n: one decision variable per position.
func (p *Problem) NVariables() int {
	return p.n
}

// Successors assigns every still-unplaced vertex to position `variable`
// (which the engine always sets to parent.LayerNumber, the next free
// position under the default VariableSelector). The added cost for
// placing vertex v at this position is computed by iterating over the
// positions already bound on parent — an O(n) scan per candidate vertex,
// O(n^2) per expansion overall, matching the documented cost model of
// a deliberate choice rather than a precomputed contribution vector.
func (p *Problem) Successors(parent *node.Node, variable int) ([]*node.Node, error) {
	current := parent.State.(*rep).remaining

	var children []*node.Node
	for v := 0; v < p.n; v++ {
		if !current.has(v) {
			continue
		}

		cost := 0.0
		for q := 0; q < variable; q++ {
			u := parent.Variables[q].Value
			w := p.weight[u][v]
			if w == 0 {
				continue
			}
			cost += w * math.Abs(float64(variable-q))
		}

		child, err := parent.Successor(&rep{remaining: current.without(v)}, parent.Value-cost, variable, variable, v)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

// Merge folds nodes into one: the merged state is the union of the
// inputs' remaining-vertex sets (a sound over-approximation — it can only
// offer more future placements than any single branch truly has, which
// enlarges the achievable upper bound rather than tightening it past
// validity), while Value, Variables, and Indexes are inherited from the
// best-value (maximum Value) input, per the Problem.merge contract.
func (p *Problem) Merge(nodes []*node.Node) (*node.Node, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("minla: Merge requires at least 2 nodes, got %d", len(nodes))
	}

	best := nodes[0]
	union := nodes[0].State.(*rep).remaining
	for _, n := range nodes[1:] {
		union = union.union(n.State.(*rep).remaining)
		if n.Value > best.Value {
			best = n
		}
	}

	vars := make([]node.Variable, len(best.Variables))
	copy(vars, best.Variables)
	idx := make([]int, len(best.Indexes))
	copy(idx, best.Indexes)

	return &node.Node{
		State:        &rep{remaining: union},
		Value:        best.Value,
		RelaxedValue: math.Inf(1),
		Exact:        false,
		Variables:    vars,
		Indexes:      idx,
		LayerNumber:  best.LayerNumber,
	}, nil
}
