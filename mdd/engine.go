package mdd

import (
	"fmt"

	"github.com/katalvlaran/mddbb/layer"
	"github.com/katalvlaran/mddbb/node"
	"github.com/katalvlaran/mddbb/problem"
	"github.com/katalvlaran/mddbb/selector"
)

// Engine holds the three pluggable policies and compiles a Problem into a
// bounded-width MDD. A dedicated struct (rather than free functions taking
// selectors as arguments) keeps call sites short and makes the policies'
// identity explicit at construction, mirroring tsp/bb.go's bbEngine.
type Engine struct {
	VariableSelector selector.VariableSelector
	MergeSelector    selector.MergeSelector
	DeleteSelector   selector.DeleteSelector
}

// New builds an Engine from the three selectors. Panics if any is nil —
// a misconfigured Engine is a construction-time programming error, not a
// runtime condition (mirrors builder/options.go's panic-on-nil-option).
func New(vs selector.VariableSelector, ms selector.MergeSelector, ds selector.DeleteSelector) *Engine {
	if vs == nil {
		panic("mdd: New called with nil VariableSelector")
	}
	if ms == nil {
		panic("mdd: New called with nil MergeSelector")
	}
	if ds == nil {
		panic("mdd: New called with nil DeleteSelector")
	}

	return &Engine{VariableSelector: vs, MergeSelector: ms, DeleteSelector: ds}
}

// Compile builds a bounded-width MDD rooted at root, in the given mode, and
// returns its terminal node, exact cutset (relaxed mode only), and whether
// the compilation stayed exact throughout.
func (e *Engine) Compile(p problem.Problem, root *node.Node, width int, mode Mode) (Result, error) {
	if root == nil {
		return Result{}, ErrNoRoot
	}
	if width < 1 {
		return Result{}, ErrBadWidth
	}

	n := p.NVariables()

	current := layer.New()
	current.Add(root)

	isExact := true
	var cutset []*node.Node
	if mode == Relaxed && current.AllExact() {
		cutset = detach(current.Nodes())
	}

	for pos := root.LayerNumber; pos < n; pos++ {
		if current.Len() == 0 {
			// Every path from root died out before reaching layer n.
			break
		}

		v := e.VariableSelector.Select(current, current.Nodes()[0].UnboundIDs())

		next := layer.New()
		for _, u := range current.Nodes() {
			children, err := p.Successors(u, v)
			if err != nil {
				return Result{}, err
			}

			if len(children) == 0 {
				// Dead-end pass-through: mirror a copy of the
				// parent forward rather than rejecting the path.
				child, perr := u.PassThrough(pos, v)
				if perr != nil {
					return Result{}, perr
				}
				next.Add(child)
				continue
			}

			for _, child := range children {
				if child.LayerNumber != pos+1 {
					return Result{}, fmt.Errorf(
						"%w: Problem.Successors returned LayerNumber %d at branching position %d (want %d)",
						node.ErrInconsistentLayer, child.LayerNumber, pos, pos+1,
					)
				}
				next.Add(child)
			}
		}

		violated := false
		if width < next.Len() {
			excess := next.Len() - width
			switch mode {
			case Restricted:
				drop := e.DeleteSelector.Select(next, excess)
				next.Remove(drop)
			case Relaxed:
				toMerge := e.MergeSelector.Select(next, excess+1)
				merged, err := p.Merge(toMerge)
				if err != nil {
					return Result{}, err
				}
				if merged.LayerNumber != pos+1 {
					return Result{}, fmt.Errorf(
						"mdd: contract violation: Problem.Merge returned LayerNumber %d at branching position %d (want %d)",
						merged.LayerNumber, pos, pos+1,
					)
				}
				next.Remove(toMerge)
				next.Add(merged)
			}
			violated = true
		}

		if violated {
			isExact = false
		} else if mode == Relaxed && isExact && next.AllExact() {
			cutset = detach(next.Nodes())
		}

		current = next
	}

	return Result{
		Terminal: current.Best(),
		Cutset:   cutset,
		Exact:    isExact,
	}, nil
}

// detach deep-copies nodes so they survive the compile's own layer
// buffers being superseded.
func detach(nodes []*node.Node) []*node.Node {
	out := make([]*node.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}
