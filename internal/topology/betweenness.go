package topology

import "github.com/nyxcrypt/graphcrypto/internal/graphbuild"

// computeBetweenness fills b[i] with the normalized betweenness centrality
// of i using Brandes' algorithm, run once per source vertex in ascending
// order with BFS neighbor expansion also in ascending order, so the
// accumulation order — and hence the resulting floats — is fixed.
func computeBetweenness(g *graphbuild.Graph, out *[graphbuild.Vertices]float64) {
	const n = graphbuild.Vertices
	var centrality [n]float64

	var (
		sigma [n]float64 // number of shortest paths from s to v
		dist  [n]int     // BFS distance from s, -1 = unvisited
		delta [n]float64 // dependency of s on v
		preds [n][]int   // predecessors of v on shortest paths from s
		order []int      // BFS visitation order, for the back-propagation pass
		queue []int
	)

	for s := 0; s < n; s++ {
		for v := 0; v < n; v++ {
			dist[v] = -1
			sigma[v] = 0
			delta[v] = 0
			preds[v] = preds[v][:0]
		}
		sigma[s] = 1
		dist[s] = 0
		order = order[:0]
		queue = append(queue[:0], s)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, w := range g.Neighbors(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				centrality[w] += delta[w]
			}
		}
	}

	// Each shortest path pair was counted once per direction by running
	// every vertex as a source, so the standard undirected normalization
	// factor also halves the directed sum.
	const nf = float64(n)
	norm := 2.0 / ((nf - 1) * (nf - 2))
	for v := 0; v < n; v++ {
		out[v] = centrality[v] / 2 * norm
	}
}
