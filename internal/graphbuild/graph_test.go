package graphbuild

import "testing"

func TestBuildProducesEdges(t *testing.T) {
	t.Parallel()

	g := Build([]byte("my_secret_seed"))
	if g.EdgeCount() <= 0 {
		t.Fatalf("EdgeCount() = %d, want > 0", g.EdgeCount())
	}
}

func TestBuildNoSelfLoops(t *testing.T) {
	t.Parallel()

	g := Build([]byte("self-loop check"))
	for v := 0; v < Vertices; v++ {
		if g.HasEdge(v, v) {
			t.Fatalf("vertex %d has a self-loop", v)
		}
	}
}

func TestBuildSymmetric(t *testing.T) {
	t.Parallel()

	g := Build([]byte("symmetry check"))
	for u := 0; u < Vertices; u++ {
		for _, v := range g.Neighbors(u) {
			if !g.HasEdge(v, u) {
				t.Fatalf("edge %d-%d not symmetric", u, v)
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	g1 := Build([]byte("determinism"))
	g2 := Build([]byte("determinism"))

	if g1.EdgeCount() != g2.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", g1.EdgeCount(), g2.EdgeCount())
	}
	for u := 0; u < Vertices; u++ {
		n1, n2 := g1.Neighbors(u), g2.Neighbors(u)
		if len(n1) != len(n2) {
			t.Fatalf("vertex %d: neighbor count differs", u)
		}
		for i := range n1 {
			if n1[i] != n2[i] {
				t.Fatalf("vertex %d: neighbor %d differs: %d vs %d", u, i, n1[i], n2[i])
			}
		}
	}
}

func TestBuildEmptySeedSucceeds(t *testing.T) {
	t.Parallel()

	g := Build(nil)
	if g.EdgeCount() <= 0 {
		t.Fatalf("EdgeCount() = %d for empty seed, want > 0", g.EdgeCount())
	}
}

func TestNeighborsAscending(t *testing.T) {
	t.Parallel()

	g := Build([]byte("ordering"))
	for v := 0; v < Vertices; v++ {
		ns := g.Neighbors(v)
		for i := 1; i < len(ns); i++ {
			if ns[i] <= ns[i-1] {
				t.Fatalf("vertex %d: neighbors not strictly ascending at %d: %v", v, i, ns)
			}
		}
	}
}

func TestDegreeMatchesNeighborCount(t *testing.T) {
	t.Parallel()

	g := Build([]byte("degree check"))
	for v := 0; v < Vertices; v++ {
		if got, want := g.Degree(v), len(g.Neighbors(v)); got != want {
			t.Fatalf("vertex %d: Degree() = %d, want %d", v, got, want)
		}
	}
}
