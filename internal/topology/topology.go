// Package topology extracts the four topological feature vectors the
// fusion layer turns into topo_bytes: degree, local clustering,
// betweenness centrality, and the Laplacian spectrum.
package topology

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nyxcrypt/graphcrypto/internal/graphbuild"
)

// Vectors holds the four length-256 real-valued feature vectors the
// fusion layer consumes. Degree is integer-valued; Laplacian holds the
// floating-point eigenvalues in ascending order; Clustering and
// Betweenness are real-valued in [0,1].
type Vectors struct {
	Degree      [graphbuild.Vertices]float64
	Clustering  [graphbuild.Vertices]float64
	Betweenness [graphbuild.Vertices]float64
	Laplacian   [graphbuild.Vertices]float64
}

// Extract computes all four vectors. Betweenness centrality (O(V·E)) and
// the Laplacian eigendecomposition (O(V^3)) are the two expensive,
// independent, read-only passes over g; they run concurrently via
// errgroup since neither depends on the other's result and fusion only
// needs both finished.
func Extract(ctx context.Context, g *graphbuild.Graph) (*Vectors, error) {
	v := &Vectors{}

	for i := 0; i < graphbuild.Vertices; i++ {
		v.Degree[i] = float64(g.Degree(i))
	}
	computeClustering(g, &v.Clustering)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		computeBetweenness(g, &v.Betweenness)
		return ctx.Err()
	})
	grp.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		lambda, err := computeLaplacianSpectrum(g)
		if err != nil {
			return err
		}
		v.Laplacian = lambda
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}

// computeClustering fills c[i] = triangles(i) / C(d[i],2), or 0 when
// d[i] < 2.
func computeClustering(g *graphbuild.Graph, out *[graphbuild.Vertices]float64) {
	for i := 0; i < graphbuild.Vertices; i++ {
		neighbors := g.Neighbors(i)
		d := len(neighbors)
		if d < 2 {
			out[i] = 0
			continue
		}
		triangles := 0
		for a := 0; a < len(neighbors); a++ {
			for b := a + 1; b < len(neighbors); b++ {
				if g.HasEdge(neighbors[a], neighbors[b]) {
					triangles++
				}
			}
		}
		pairs := float64(d*(d-1)) / 2
		out[i] = float64(triangles) / pairs
	}
}
