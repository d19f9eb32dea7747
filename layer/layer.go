// Package layer implements the Layer type: a state-keyed collection of
// Nodes with a merging insert, mirroring core/types.go's Graph in spirit
// (a small struct guarding its own storage) but sized for a single MDD
// layer's lifetime.
package layer

import "github.com/katalvlaran/mddbb/node"

// Layer is a mapping from state representation to Node, with unique state
// keys. Nodes are bucketed by their state's Hash(); within a bucket,
// Equal() resolves hash collisions so dedup stays correct even when Hash
// is not collision-free. Iteration/insertion order is preserved in order
// for deterministic Best() tie-breaking.
type Layer struct {
	buckets map[string][]*node.Node
	order   []*node.Node
}

// New returns an empty Layer.
func New() *Layer {
	return &Layer{buckets: make(map[string][]*node.Node)}
}

// Add inserts n, merging in place into an existing node with an Equal
// state (value := max, exact := AND) rather than creating a duplicate key.
// Returns the node actually stored (n itself, or the pre-existing one it
// was merged into).
func (l *Layer) Add(n *node.Node) *node.Node {
	h := n.State.Hash()
	for _, existing := range l.buckets[h] {
		if existing.State.Equal(n.State) {
			existing.Merge(n)
			return existing
		}
	}

	l.buckets[h] = append(l.buckets[h], n)
	l.order = append(l.order, n)

	return n
}

// Remove deletes the given nodes from the layer. Nodes not present are
// silently ignored (callers pass selector output, which is always a subset
// of Nodes()).
func (l *Layer) Remove(doomed []*node.Node) {
	if len(doomed) == 0 {
		return
	}

	drop := make(map[*node.Node]struct{}, len(doomed))
	for _, n := range doomed {
		drop[n] = struct{}{}
	}

	kept := l.order[:0:0]
	for _, n := range l.order {
		if _, ok := drop[n]; ok {
			continue
		}
		kept = append(kept, n)
	}
	l.order = kept

	for h, bucket := range l.buckets {
		filtered := bucket[:0:0]
		for _, n := range bucket {
			if _, ok := drop[n]; ok {
				continue
			}
			filtered = append(filtered, n)
		}
		if len(filtered) == 0 {
			delete(l.buckets, h)
		} else {
			l.buckets[h] = filtered
		}
	}
}

// Nodes returns the layer's nodes in insertion order. Callers must not
// mutate the returned slice's backing array.
func (l *Layer) Nodes() []*node.Node {
	return l.order
}

// Len returns the layer's width (number of distinct states).
func (l *Layer) Len() int {
	return len(l.order)
}

// Best returns the node of maximum Value, ties broken by insertion order
// (the earliest-inserted node with the maximum value wins). Returns nil
// for an empty layer.
func (l *Layer) Best() *node.Node {
	if len(l.order) == 0 {
		return nil
	}

	best := l.order[0]
	for _, n := range l.order[1:] {
		if n.Value > best.Value {
			best = n
		}
	}

	return best
}

// AllExact reports whether every node currently in the layer is exact.
// Combined with the MDD engine's own restriction/relaxation bookkeeping,
// this decides whether a layer is eligible to become the exact cutset:
// exactness requires every node to be exact AND that no node was
// deleted or merged to form the layer — the deletion/merge half is
// tracked by the engine's isExact flag, not by the layer itself.
func (l *Layer) AllExact() bool {
	for _, n := range l.order {
		if !n.Exact {
			return false
		}
	}

	return true
}
