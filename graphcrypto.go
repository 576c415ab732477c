// Package graphcrypto is a deterministic pseudorandom byte generator and
// block cipher whose key schedule and substitution-permutation primitives
// are derived from the topology of a seed-generated undirected graph on
// 256 vertices.
//
// Given a seed, New computes the graph, its topological feature vectors,
// the S-box, the bit permutation, and the round-key schedule once; all of
// that derived material is then immutable, and an Instance exposes a
// counter-mode keystream (GenerateBlock/GenerateBytes) and an encryption
// primitive (Encrypt) built on top of it.
package graphcrypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/nyxcrypt/graphcrypto/internal/fusion"
	"github.com/nyxcrypt/graphcrypto/internal/graphbuild"
	"github.com/nyxcrypt/graphcrypto/internal/keyschedule"
	"github.com/nyxcrypt/graphcrypto/internal/permute"
	"github.com/nyxcrypt/graphcrypto/internal/sbox"
	"github.com/nyxcrypt/graphcrypto/internal/spn"
	"github.com/nyxcrypt/graphcrypto/internal/streamcipher"
	"github.com/nyxcrypt/graphcrypto/internal/topology"
)

// Mode selects the S-box construction. ModeAffine is the default and the
// only mode the reproducibility contract and the DU/NL guarantees apply
// to.
type Mode = sbox.Mode

const (
	ModeAffine = sbox.ModeAffine
	ModeDirect = sbox.ModeDirect
	ModeHybrid = sbox.ModeHybrid
)

// Sentinel errors.
var (
	// ErrInvalidSeedLength is reserved for a future revision; no seed
	// length is currently rejected (an empty seed is permitted).
	ErrInvalidSeedLength = errors.New("graphcrypto: invalid seed length")
	// ErrNegativeLength is returned by GenerateBytes for n < 0.
	ErrNegativeLength = errors.New("graphcrypto: negative length")
	// ErrConstruction wraps a failure during New: eigendecomposition
	// non-convergence or a degenerate graph.
	ErrConstruction = errors.New("graphcrypto: construction failed")
)

// Stats is the diagnostic accessor for the derived material of an
// Instance.
type Stats struct {
	Nodes           int
	Edges           int
	SboxDiffFromAES int
	Mode            Mode
}

// Option configures New.
type Option func(*options)

type options struct {
	mode Mode
	ctx  context.Context
}

// WithMode selects the S-box construction mode. The default is
// ModeAffine.
func WithMode(mode Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithContext threads a cancellation context through the expensive
// construction cost center (betweenness centrality, Laplacian
// eigendecomposition). The default is context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// Instance is a fully constructed pseudorandom generator and block
// cipher for one seed. All derived material is immutable after New
// returns; the counter inside stream is the only mutable state, and
// Instance methods are not reentrant because they mutate it.
type Instance struct {
	graph  *graphbuild.Graph
	sbox   [256]byte
	mode   Mode
	pi     permute.Perm
	rk     [keyschedule.Rounds][16]byte
	stream *streamcipher.Stream
}

// New constructs an Instance from seed. Seed is any byte string,
// including empty. Construction computes the graph, topology vectors,
// S-box, bit permutation, and round keys once; afterwards every
// operation is total.
func New(seed []byte, opts ...Option) (*Instance, error) {
	cfg := options{mode: ModeAffine, ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	graph := graphbuild.Build(seed)
	if graph.EdgeCount() == 0 {
		return nil, fmt.Errorf("%w: seed produced an edgeless graph", ErrConstruction)
	}

	vectors, err := topology.Extract(cfg.ctx, graph)
	if err != nil {
		return nil, fmt.Errorf("%w: topology extraction: %w", ErrConstruction, err)
	}

	topoBytes := fusion.Fuse(vectors)

	var firstEigen [8]float64
	copy(firstEigen[:], vectors.Laplacian[:8])

	var sboxTable [256]byte
	switch cfg.mode {
	case ModeAffine:
		sboxTable = sbox.BuildAffine(topoBytes, firstEigen)
	case ModeDirect:
		sboxTable = sbox.BuildDirect(topoBytes)
	case ModeHybrid:
		sboxTable, err = sbox.BuildHybrid(topoBytes, firstEigen)
		if err != nil {
			return nil, fmt.Errorf("%w: hybrid sbox expansion: %w", ErrConstruction, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %v", ErrConstruction, cfg.mode)
	}

	pi := permute.Build(topoBytes)
	rk := keyschedule.Derive(seed, topoBytes)
	cipher := spn.New(sboxTable, pi)

	return &Instance{
		graph:  graph,
		sbox:   sboxTable,
		mode:   cfg.mode,
		pi:     pi,
		rk:     rk,
		stream: streamcipher.New(cipher, rk),
	}, nil
}

// GenerateBlock returns the next 16-byte counter-mode output block.
func (in *Instance) GenerateBlock() [16]byte {
	return in.stream.GenerateBlock()
}

// GenerateBytes returns n bytes of keystream, the concatenation of
// ceil(n/16) blocks truncated to n. It returns ErrNegativeLength for
// n < 0.
func (in *Instance) GenerateBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	return in.stream.GenerateBytes(n), nil
}

// Encrypt XORs plaintext (zero-padded to a 16-byte multiple) with the
// keystream. The output length is always ceil(len(plaintext)/16)*16; the
// original length is not recorded. Use EncryptFramed for a
// length-preserving variant.
func (in *Instance) Encrypt(plaintext []byte) []byte {
	return in.stream.Encrypt(plaintext)
}

// EncryptFramed is Encrypt with a 4-byte big-endian original-length
// prefix, letting a caller recover the exact plaintext length after
// decrypting the body by XOR.
func (in *Instance) EncryptFramed(plaintext []byte) []byte {
	return in.stream.EncryptFramed(plaintext)
}

// Rewind resets the counter-mode counter to an arbitrary value, letting
// callers replay blocks to test the XOR-round-trip property.
func (in *Instance) Rewind(counter uint64) {
	in.stream.Rewind(counter)
}

// Stats returns the vertex count (always 256), the edge count of the
// seed-derived graph, the number of S-box entries that differ from the
// standard AES S-box, and the active S-box construction mode.
func (in *Instance) Stats() Stats {
	diff := 0
	for x := 0; x < 256; x++ {
		if in.sbox[x] != sbox.AESSBox[x] {
			diff++
		}
	}
	return Stats{
		Nodes:           graphbuild.Vertices,
		Edges:           in.graph.EdgeCount(),
		SboxDiffFromAES: diff,
		Mode:            in.mode,
	}
}
