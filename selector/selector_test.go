package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mddbb/layer"
	"github.com/katalvlaran/mddbb/node"
	"github.com/katalvlaran/mddbb/selector"
	"github.com/katalvlaran/mddbb/state"
)

type rankState struct {
	id   int
	rank float64
}

func (s *rankState) Equal(other state.Representation) bool {
	o, ok := other.(*rankState)
	return ok && o.id == s.id
}
func (s *rankState) Hash() string                    { return string(rune('a' + s.id)) }
func (s *rankState) Clone() state.Representation     { return &rankState{id: s.id, rank: s.rank} }
func (s *rankState) Rank(ctx state.RankInput) float64 { return s.rank }

func mkRanked(id int, rank float64) *node.Node {
	return node.NewRoot(&rankState{id: id, rank: rank}, 0)
}

func TestSimpleVariableSelector_ReturnsLowest(t *testing.T) {
	got := selector.SimpleVariableSelector{}.Select(nil, []int{3, 1, 2})
	assert.Equal(t, 1, got)
}

func TestSimpleVariableSelector_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		selector.SimpleVariableSelector{}.Select(nil, nil)
	})
}

func TestRankDeleteSelector_ReturnsLowestRanked(t *testing.T) {
	l := layer.New()
	l.Add(mkRanked(1, 10))
	l.Add(mkRanked(2, 1))
	l.Add(mkRanked(3, 5))

	got := selector.RankDeleteSelector{}.Select(l, 1)
	assert.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].State.Rank(state.RankInput{}))
}

func TestRankMergeSelector_PanicsOnKLessThan2(t *testing.T) {
	l := layer.New()
	l.Add(mkRanked(1, 1))
	l.Add(mkRanked(2, 2))

	assert.Panics(t, func() {
		selector.RankMergeSelector{}.Select(l, 1)
	})
}

func TestRankMergeSelector_ReturnsKLowestRanked(t *testing.T) {
	l := layer.New()
	l.Add(mkRanked(1, 10))
	l.Add(mkRanked(2, 1))
	l.Add(mkRanked(3, 5))

	got := selector.RankMergeSelector{}.Select(l, 2)
	assert.Len(t, got, 2)
	ranks := []float64{got[0].State.Rank(state.RankInput{}), got[1].State.Rank(state.RankInput{})}
	assert.ElementsMatch(t, []float64{1, 5}, ranks)
}
