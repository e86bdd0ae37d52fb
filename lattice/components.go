package lattice

// Reachable returns every open cell connected to from without crossing a
// wall, in BFS order starting with from itself. It returns nil when from is a
// wall or out of bounds.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Reachable(from Point) []Point {
	if g.IsWall(from) {
		return nil
	}
	seen := make([]bool, g.width*g.height)

	return g.flood(from, seen)
}

// Components partitions all open cells into 4-connected components. Seeds are
// taken in row-major order, so component order and the order of cells inside
// each component are deterministic.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Components() [][]Point {
	seen := make([]bool, g.width*g.height)
	var comps [][]Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{x, y}
			if g.IsWall(p) || seen[g.index(p)] {
				continue
			}
			comps = append(comps, g.flood(p, seen))
		}
	}

	return comps
}

// flood runs a BFS from p over open cells, marking seen as it goes.
func (g *Grid) flood(p Point, seen []bool) []Point {
	queue := []Point{p}
	seen[g.index(p)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Cardinals {
			v := u.Add(d)
			if g.IsWall(v) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return queue
}
