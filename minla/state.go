package minla

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/mddbb/state"
)

// remainingSet is a bitset of vertex indices not yet placed, limited to 64
// vertices by the single uint64 word. MinLA instances in this package are
// illustrative (concrete encodings are external to the core), so this
// bound is a deliberate simplicity choice, not a core solver limit.
type remainingSet struct {
	bits uint64
}

func fullSet(n int) remainingSet {
	if n > 64 {
		panic(fmt.Sprintf("minla: remainingSet supports at most 64 vertices, got %d", n))
	}
	if n == 64 {
		return remainingSet{bits: ^uint64(0)}
	}

	return remainingSet{bits: (uint64(1) << uint(n)) - 1}
}

func (s remainingSet) has(v int) bool {
	return s.bits&(uint64(1)<<uint(v)) != 0
}

func (s remainingSet) without(v int) remainingSet {
	return remainingSet{bits: s.bits &^ (uint64(1) << uint(v))}
}

func (s remainingSet) union(other remainingSet) remainingSet {
	return remainingSet{bits: s.bits | other.bits}
}

func (s remainingSet) count() int {
	return bits.OnesCount64(s.bits)
}

// rep is the state.Representation wrapping a remainingSet: the set of
// vertices not yet assigned to a position. Equal/Hash key Layer
// deduplication on this set alone, not on which positions are already
// filled — the assignment history itself lives on node.Node.Variables,
// per the Problem.Successors/Merge contract.
type rep struct {
	remaining remainingSet
}

func newRep(n int) *rep {
	return &rep{remaining: fullSet(n)}
}

func (r *rep) Equal(other state.Representation) bool {
	o, ok := other.(*rep)
	if !ok {
		return false
	}

	return r.remaining == o.remaining
}

func (r *rep) Hash() string {
	return fmt.Sprintf("%064b", r.remaining.bits)
}

func (r *rep) Clone() state.Representation {
	return &rep{remaining: r.remaining}
}

// Rank uses the node's achieved value: partial assignments with a worse
// running cost are the first candidates to merge or delete, a common
// default for value-bound decision diagrams.
func (r *rep) Rank(ctx state.RankInput) float64 {
	return ctx.Value
}
