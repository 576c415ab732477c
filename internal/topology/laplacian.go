package topology

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nyxcrypt/graphcrypto/internal/graphbuild"
)

// computeLaplacianSpectrum builds the dense Laplacian L = D - A and
// returns its eigenvalues sorted ascending, delegating the
// eigendecomposition to gonum/mat's symmetric eigensolver rather than a
// hand-rolled QR iteration.
func computeLaplacianSpectrum(g *graphbuild.Graph) ([graphbuild.Vertices]float64, error) {
	const n = graphbuild.Vertices
	var out [n]float64

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		neighbors := g.Neighbors(i)
		data[i*n+i] = float64(len(neighbors))
		for _, j := range neighbors {
			data[i*n+j] = -1
		}
	}
	laplacian := mat.NewSymDense(n, data)

	var eig mat.EigenSym
	if ok := eig.Factorize(laplacian, false); !ok {
		return out, fmt.Errorf("graphcrypto: laplacian eigendecomposition did not converge")
	}
	values := eig.Values(nil)
	copy(out[:], values)
	return out, nil
}
