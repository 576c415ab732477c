// Package graphbuild constructs the seed-derived 256-vertex undirected
// simple graph that the rest of the pipeline extracts topology from.
package graphbuild

import "github.com/nyxcrypt/graphcrypto/internal/entropy"

// Vertices is the fixed vertex-set size, pinned so the topology vector
// fits one byte per vertex.
const Vertices = 256

// Rounds is the number of hash-chain steps run to sample edges.
const Rounds = 48

// Graph is an undirected simple graph on {0,...,Vertices-1}. adj is a
// symmetric bitset: adj[u] has bit v set iff {u,v} is an edge. Self-loops
// are never set.
type Graph struct {
	adj   [Vertices]uint32Bitset
	edges int
}

// uint32Bitset packs 256 bits as eight uint32 words.
type uint32Bitset [Vertices / 32]uint32

func (b *uint32Bitset) set(i int)      { b[i/32] |= 1 << uint(i%32) }
func (b *uint32Bitset) has(i int) bool { return b[i/32]&(1<<uint(i%32)) != 0 }

// Build runs the 48-round SHA-512 hash chain from seed and inserts every
// (u,v) edge pair it yields, skipping self-loops and collapsing
// duplicates via the bitset representation.
func Build(seed []byte) *Graph {
	g := &Graph{}

	h := append([]byte(nil), seed...)
	for r := 0; r < Rounds; r++ {
		next := entropy.ChainStep(h, r)
		h = next[:]

		for i := 0; i < 32; i++ {
			u, v := int(h[2*i]), int(h[2*i+1])
			if u == v {
				continue
			}
			g.addEdge(u, v)
		}
	}
	return g
}

func (g *Graph) addEdge(u, v int) {
	if g.adj[u].has(v) {
		return
	}
	g.adj[u].set(v)
	g.adj[v].set(u)
	g.edges++
}

// HasEdge reports whether {u,v} is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	return g.adj[u].has(v)
}

// Neighbors returns the sorted (ascending) neighbor list of v. Ascending
// order matters: the topology extractor's BFS traverses neighbors in a
// fixed order so betweenness centrality comes out byte-reproducible.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, 0, 8)
	for u := 0; u < Vertices; u++ {
		if g.adj[v].has(u) {
			out = append(out, u)
		}
	}
	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	n := 0
	word := g.adj[v]
	for _, w := range word {
		n += popcount(w)
	}
	return n
}

// EdgeCount returns |E(G)|, exposed directly for Stats().
func (g *Graph) EdgeCount() int { return g.edges }

func popcount(w uint32) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}
