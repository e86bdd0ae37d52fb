package lattice_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/lattice"
)

// BenchmarkNew measures construction of a 501×501 lattice.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lattice.New(501, 501, lattice.WithSeed(42)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkUnionChain merges every room of a 201×201 lattice into the first
// one along its row, exercising the forest's path compression.
func BenchmarkUnionChain(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := lattice.New(201, 201, lattice.WithSeed(42))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		rooms := g.Rooms()
		b.StartTimer()
		for _, r := range rooms[1:] {
			if _, err := g.Union(rooms[0], r); err != nil {
				b.Fatalf("Union failed: %v", err)
			}
		}
	}
}

// BenchmarkComponents floods an untouched 501×501 lattice, where every room
// is its own component.
func BenchmarkComponents(b *testing.B) {
	g, err := lattice.New(501, 501, lattice.WithSeed(42))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
