// Package selector declares the three pluggable heuristics the MDD engine
// consults during compilation — VariableSelector, MergeSelector, and
// DeleteSelector — and provides the deterministic default implementation
// of each, following a pluggable-policy-function approach: small, pure,
// panic-on-misuse value types rather than an inheritance hierarchy.
package selector

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mddbb/layer"
	"github.com/katalvlaran/mddbb/node"
)

// VariableSelector picks the next variable id to branch on, given the
// current layer and its (ascending) unbound variable ids. Implementations
// MUST be pure and deterministic.
type VariableSelector interface {
	Select(l *layer.Layer, unbound []int) int
}

// MergeSelector picks exactly k nodes to collapse into one when a relaxed
// layer's width exceeds the bound. k is always >= 2.
type MergeSelector interface {
	Select(l *layer.Layer, k int) []*node.Node
}

// DeleteSelector picks k nodes to drop when a restricted layer's width
// exceeds the bound.
type DeleteSelector interface {
	Select(l *layer.Layer, k int) []*node.Node
}

// SimpleVariableSelector always returns the lowest unbound variable id.
// Deterministic by construction: the input is already ascending-sorted, so
// this is just unbound[0].
type SimpleVariableSelector struct{}

// Select returns the lowest-id unbound variable. Panics if unbound is
// empty — the engine never calls this once every variable is bound.
func (SimpleVariableSelector) Select(_ *layer.Layer, unbound []int) int {
	if len(unbound) == 0 {
		panic("selector: SimpleVariableSelector called with no unbound variables")
	}

	lowest := unbound[0]
	for _, id := range unbound[1:] {
		if id < lowest {
			lowest = id
		}
	}

	return lowest
}

// byRank sorts nodes by ascending Rank. Less compares ranks only, so ties
// keep their original (insertion) order only under a stable sort
// (lowestRank uses sort.Stable).
type byRank struct {
	nodes []*node.Node
	ranks []float64
}

func (b byRank) Len() int      { return len(b.nodes) }
func (b byRank) Swap(i, j int) { b.nodes[i], b.nodes[j] = b.nodes[j], b.nodes[i]; b.ranks[i], b.ranks[j] = b.ranks[j], b.ranks[i] }
func (b byRank) Less(i, j int) bool {
	return b.ranks[i] < b.ranks[j]
}

func rankOf(n *node.Node) float64 {
	return n.State.Rank(n.RankInput())
}

// lowestRank returns the k lowest-ranked nodes in l, in ascending-rank
// order, ties broken by insertion order (stable sort over the original
// Nodes() slice).
func lowestRank(l *layer.Layer, k int) []*node.Node {
	nodes := append([]*node.Node(nil), l.Nodes()...)
	ranks := make([]float64, len(nodes))
	for i, n := range nodes {
		ranks[i] = rankOf(n)
	}

	sort.Stable(byRank{nodes: nodes, ranks: ranks})
	if k > len(nodes) {
		k = len(nodes)
	}

	return nodes[:k]
}

// RankMergeSelector returns the k nodes with smallest Rank, to be folded
// into a single merged node by Problem.Merge. Post-condition: k >= 2.
type RankMergeSelector struct{}

// Select returns exactly k nodes with the smallest Rank. Panics if k < 2
// or k exceeds the layer's width — both are contract violations from the
// engine's own width arithmetic, never from Problem- or user-supplied data.
func (RankMergeSelector) Select(l *layer.Layer, k int) []*node.Node {
	if k < 2 {
		panic(fmt.Sprintf("selector: RankMergeSelector requires k >= 2, got %d", k))
	}
	if k > l.Len() {
		panic(fmt.Sprintf("selector: RankMergeSelector requires k <= layer width %d, got %d", l.Len(), k))
	}

	return lowestRank(l, k)
}

// RankDeleteSelector returns the k nodes with smallest Rank, to be dropped
// from a restricted layer.
type RankDeleteSelector struct{}

// Select returns exactly k nodes with the smallest Rank. Panics if k is
// negative or exceeds the layer's width.
func (RankDeleteSelector) Select(l *layer.Layer, k int) []*node.Node {
	if k < 0 {
		panic(fmt.Sprintf("selector: RankDeleteSelector requires k >= 0, got %d", k))
	}
	if k > l.Len() {
		panic(fmt.Sprintf("selector: RankDeleteSelector requires k <= layer width %d, got %d", l.Len(), k))
	}

	return lowestRank(l, k)
}
