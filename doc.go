// Package labyrinth generates perfect and braided mazes on a wall lattice
// and solves them with A*.
//
// 🚀 What is labyrinth?
//
//	A small, seeded, batch pipeline:
//		• lattice   — the grid: rooms, doors, pillars, regions, flood fill
//		• generator — spanning generation by region merging, braiding
//		• astar     — A* with a Manhattan heuristic, BFS reference distance
//		• render    — ASCII writer and tcell terminal view
//		• server    — gin HTTP API over the whole pipeline
//		• config    — LABYRINTH_* environment and .env settings
//
// Same seed, same maze: the random source lives in the Grid and every step
// draws from it in a fixed order.
//
// Quick ASCII example (7×5, path marked with '*'):
//
//	#######
//	#*****#
//	**###**
//	# # # #
//	#######
//
// Pipeline:
//
//	g, _ := lattice.New(21, 21, lattice.WithSeed(42))
//	_, _ = generator.Generate(g)
//	_, _ = generator.Braid(g, generator.DefaultBraidFraction)
//	res, _ := astar.SolveGrid(g)
//	_ = render.WriteASCII(os.Stdout, g.Matrix(), res.Mask())
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
