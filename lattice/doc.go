// Package lattice models a rectangular maze lattice: a fixed-size grid of
// cells where every cell is either a Wall or belongs to a Region.
//
// What:
//
//   - Grid wraps a W×H lattice. Even rows and even columns are structural
//     walls, odd,odd cells are carvable rooms, and cells with exactly one
//     even coordinate are the doors between two rooms.
//   - Region identity is an integer token (RegionID). Regions are tracked by
//     an index-based union-find forest (path compression, union by size), so
//     merging two regions is O(α(n)) instead of a full-grid rewrite.
//   - Start (0, H/2) and End (W-1, H/2) are opened at construction, each in a
//     fresh region of its own.
//   - The Grid owns its pseudo-random generator, seeded exactly once.
//
// Why:
//
//   - Maze generators mutate the lattice monotonically (walls only ever open)
//     through Open and Union, and path finders read it through IsWall and
//     Neighbors without touching the region bookkeeping.
//   - Renderers consume the read-only Matrix view and never see the forest.
//
// Complexity:
//
//   - New:        O(W×H) time and memory.
//   - Region:     O(α(W×H)) amortized.
//   - Union:      O(α(W×H)) amortized.
//   - Regions:    O(W×H).
//   - Reachable:  O(W×H) time, O(W×H) memory.
//
// Options:
//
//   - WithSeed(seed): fix the pseudo-random sequence. Without it a
//     time-derived seed is used and reported by Grid.Seed.
//
// Errors:
//
//   - ErrInvalidSize: width or height below 3.
//   - ErrOutOfBounds: a coordinate outside [0,W)×[0,H).
//
// Odd dimensions are a precondition of the lattice semantics. Even sizes are
// accepted, but the far border column/row then keeps open singleton cells that
// never join the maze.
package lattice
