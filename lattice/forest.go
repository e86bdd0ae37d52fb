package lattice

// forest is a disjoint-set over row-major cell indices. Each root carries the
// RegionID of its set, so relabelling a whole region is a single write.
//
// find uses path halving and union attaches the smaller tree under the larger
// one; both together give O(α(n)) amortized operations.
type forest struct {
	parent []int
	size   []int
	label  []RegionID
}

func newForest(n int) *forest {
	f := &forest{
		parent: make([]int, n),
		size:   make([]int, n),
		label:  make([]RegionID, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// find returns the root of i, halving the path on the way up.
func (f *forest) find(i int) int {
	for f.parent[i] != i {
		f.parent[i] = f.parent[f.parent[i]]
		i = f.parent[i]
	}

	return i
}

// union merges the set of absorb into the set of keep. The merged set keeps
// the label of keep regardless of which root survives. It reports false when
// both already share a root.
func (f *forest) union(keep, absorb int) bool {
	rk, ra := f.find(keep), f.find(absorb)
	if rk == ra {
		return false
	}
	id := f.label[rk]
	if f.size[rk] < f.size[ra] {
		rk, ra = ra, rk
	}
	f.parent[ra] = rk
	f.size[rk] += f.size[ra]
	f.label[rk] = id

	return true
}

// labelOf returns the RegionID of the set containing i.
func (f *forest) labelOf(i int) RegionID {
	return f.label[f.find(i)]
}

// relabel assigns id to the whole set containing i.
func (f *forest) relabel(i int, id RegionID) {
	f.label[f.find(i)] = id
}

func (f *forest) clone() *forest {
	c := &forest{
		parent: make([]int, len(f.parent)),
		size:   make([]int, len(f.size)),
		label:  make([]RegionID, len(f.label)),
	}
	copy(c.parent, f.parent)
	copy(c.size, f.size)
	copy(c.label, f.label)

	return c
}
