package generator_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/lattice"
)

// BenchmarkGenerate carves a 61×61 maze (900 rooms) under the default cap.
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, err := lattice.New(61, 61, lattice.WithSeed(int64(i)))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		b.StartTimer()
		if _, err := generator.Generate(g, generator.WithMaxDraws(1<<20)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkBraid measures the snapshot scan on a carved 101×101 maze.
func BenchmarkBraid(b *testing.B) {
	g, err := lattice.New(101, 101, lattice.WithSeed(42))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if _, err := generator.Generate(g, generator.WithMaxDraws(1<<22)); err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Braid(g.Clone(), 0.1); err != nil {
			b.Fatalf("Braid failed: %v", err)
		}
	}
}
