// Package fusion normalizes the four topology vectors to bytes and fuses
// them into the single 256-byte topo_bytes string.
package fusion

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/nyxcrypt/graphcrypto/internal/graphbuild"
	"github.com/nyxcrypt/graphcrypto/internal/topology"
)

// epsilon guards the normalization denominator against a degenerate
// (constant-valued) vector.
const epsilon = 1e-12

// Normalize maps v[i] to round(255*(v[i]-min)/max(max-min, epsilon)),
// using gonum/floats for the min/max reduction.
func Normalize(v [graphbuild.Vertices]float64) [graphbuild.Vertices]byte {
	slice := v[:]
	min, max := floats.Min(slice), floats.Max(slice)
	span := max - min
	if span < epsilon {
		span = epsilon
	}

	var out [graphbuild.Vertices]byte
	for i, x := range v {
		scaled := 255 * (x - min) / span
		out[i] = byte(math.Round(scaled))
	}
	return out
}

// Fuse normalizes all four vectors and XORs them byte-by-byte into
// topo_bytes.
func Fuse(v *topology.Vectors) [graphbuild.Vertices]byte {
	d := Normalize(v.Degree)
	c := Normalize(v.Clustering)
	b := Normalize(v.Betweenness)
	l := Normalize(v.Laplacian)

	var out [graphbuild.Vertices]byte
	for i := range out {
		out[i] = d[i] ^ c[i] ^ b[i] ^ l[i]
	}
	return out
}
