package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestForest_UnionKeepsLabel verifies that the merged set always reports the
// label of the keep side, whichever root survives the size comparison.
func TestForest_UnionKeepsLabel(t *testing.T) {
	f := newForest(5)
	for i := range f.label {
		f.label[i] = RegionID(i + 1)
	}

	// Grow {0,1,2} so it is larger than {3}.
	assert.True(t, f.union(0, 1))
	assert.True(t, f.union(0, 2))

	// Small keep, large absorb: the root flips but the label must not.
	assert.True(t, f.union(3, 0))
	for _, i := range []int{0, 1, 2, 3} {
		assert.Equal(t, RegionID(4), f.labelOf(i), "index %d", i)
	}
	assert.Equal(t, RegionID(5), f.labelOf(4))

	assert.False(t, f.union(1, 3), "already merged")
}

// TestForest_FindCompressesPath checks that find shortens long chains.
func TestForest_FindCompressesPath(t *testing.T) {
	f := newForest(8)
	// Hand-build a chain 7→6→…→0.
	for i := 1; i < 8; i++ {
		f.parent[i] = i - 1
	}
	assert.Equal(t, 0, f.find(7))
	assert.Less(t, depth(f, 7), 7, "path halving should shorten the chain")
}

// TestForest_CloneIsIndependent ensures clone does not alias the original.
func TestForest_CloneIsIndependent(t *testing.T) {
	f := newForest(3)
	f.label[0], f.label[1], f.label[2] = 1, 2, 3
	c := f.clone()
	c.union(0, 1)
	c.relabel(2, 9)

	assert.Equal(t, RegionID(2), f.labelOf(1))
	assert.Equal(t, RegionID(3), f.labelOf(2))
	assert.Equal(t, RegionID(1), c.labelOf(1))
	assert.Equal(t, RegionID(9), c.labelOf(2))
}

func depth(f *forest, i int) int {
	d := 0
	for f.parent[i] != i {
		i = f.parent[i]
		d++
	}
	return d
}
