package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGap_InfiniteUpperBound(t *testing.T) {
	assert.Equal(t, 1.0, gap(0, math.Inf(1)))
}

func TestGap_NegativeUpperBound(t *testing.T) {
	assert.InDelta(t, 0.5, gap(-4, -6), 1e-9)
}

func TestGap_ZeroLowerBoundPositiveUpperBound(t *testing.T) {
	// preserved as 1.0, not specially cased.
	assert.Equal(t, 1.0, gap(0, 10))
}

func TestGap_ClosesToZeroWhenBoundsMeet(t *testing.T) {
	assert.Equal(t, 0.0, gap(7, 7))
}

func TestGap_DoublyZeroBoundsDoNotNaN(t *testing.T) {
	g := gap(0, 0)
	assert.False(t, math.IsNaN(g))
	assert.Equal(t, 0.0, g)
}
