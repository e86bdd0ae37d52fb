package generator_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
)

// ExampleGenerate carves a perfect maze. Whatever the seed, the nine rooms of
// a 7×7 lattice end up in one region joined by exactly eight doors.
func ExampleGenerate() {
	g, _ := lattice.New(7, 7, lattice.WithSeed(7))
	res, err := generator.Generate(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("merges:", res.Merges, "gates:", res.Gates)
	fmt.Println("doors:", g.CountOpen(lattice.Door), "regions:", g.Regions())

	// Output:
	// merges: 8 gates: 0
	// doors: 8 regions: 1
}

// ExampleWithOnMerge counts merges through the hook.
func ExampleWithOnMerge() {
	g, _ := lattice.New(9, 5, lattice.WithSeed(3))
	n := 0
	_, _ = generator.Generate(g, generator.WithOnMerge(func(generator.Merge) { n++ }))
	fmt.Println("merges:", n)

	// Output:
	// merges: 7
}
