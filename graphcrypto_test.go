package graphcrypto

import (
	"bytes"
	"math/bits"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/nyxcrypt/graphcrypto/internal/sbox"
)

// --- Invariants ---

func TestStatsReportsPositiveEdgeCount(t *testing.T) {
	t.Parallel()

	in, err := New([]byte(""))
	qt.Assert(t, qt.IsNil(err))

	stats := in.Stats()
	qt.Check(t, qt.Equals(stats.Nodes, 256))
	qt.Check(t, qt.IsTrue(stats.Edges > 0))
}

func TestSboxIsPermutationOf256(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("sbox permutation check"))
	qt.Assert(t, qt.IsNil(err))

	var seen [256]bool
	for _, v := range in.sbox {
		if seen[v] {
			t.Fatalf("sbox value %d repeated", v)
		}
		seen[v] = true
	}
}

func TestPiIsPermutationOf128(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("pi permutation check"))
	qt.Assert(t, qt.IsNil(err))

	var seen [128]bool
	for _, v := range in.pi {
		if seen[v] {
			t.Fatalf("pi value %d repeated", v)
		}
		seen[v] = true
	}
}

func TestSameSeedProducesIdenticalStreams(t *testing.T) {
	t.Parallel()

	const blocks = 32
	a, err := New([]byte("reproducibility"))
	qt.Assert(t, qt.IsNil(err))
	b, err := New([]byte("reproducibility"))
	qt.Assert(t, qt.IsNil(err))

	for i := 0; i < blocks; i++ {
		ba, bb := a.GenerateBlock(), b.GenerateBlock()
		if ba != bb {
			t.Fatalf("block %d differs between two instances built from the same seed", i)
		}
	}
}

func TestStatsSboxDiffMatchesManualCount(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("stats diff check"))
	qt.Assert(t, qt.IsNil(err))

	want := 0
	for x := 0; x < 256; x++ {
		if in.sbox[x] != sbox.AESSBox[x] {
			want++
		}
	}
	qt.Check(t, qt.Equals(in.Stats().SboxDiffFromAES, want))
}

// --- Laws ---

func TestGenerateBytesMatchesBlockConcatenation(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("laws"))
	qt.Assert(t, qt.IsNil(err))
	b, err := New([]byte("laws"))
	qt.Assert(t, qt.IsNil(err))

	bulk, err := a.GenerateBytes(16 * 4)
	qt.Assert(t, qt.IsNil(err))

	var manual []byte
	for i := 0; i < 4; i++ {
		blk := b.GenerateBlock()
		manual = append(manual, blk[:]...)
	}

	if diff := cmp.Diff(manual, bulk); diff != "" {
		t.Fatalf("GenerateBytes mismatch (-manual +bulk):\n%s", diff)
	}
}

func TestEncryptZeroBlockEqualsKeystream(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("keystream law"))
	qt.Assert(t, qt.IsNil(err))
	b, err := New([]byte("keystream law"))
	qt.Assert(t, qt.IsNil(err))

	zero := make([]byte, 16)
	ciphertext := a.Encrypt(zero)
	block := b.GenerateBlock()

	if !bytes.Equal(ciphertext, block[:]) {
		t.Fatalf("Encrypt(zero) = %x, want %x", ciphertext, block)
	}
}

func TestEncryptRoundTripsAfterRewind(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("round trip"))
	qt.Assert(t, qt.IsNil(err))

	plaintext := []byte("sixteen byte!!!!")
	ciphertext := in.Encrypt(plaintext)

	in.Rewind(0)
	recovered := in.Encrypt(ciphertext)

	qt.Assert(t, qt.DeepEquals(recovered, plaintext))
}

// --- Scenarios ---

func TestScenarioEmptySeedConstructs(t *testing.T) {
	t.Parallel()

	in, err := New([]byte(""))
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(in.Stats().Edges > 0))
}

func TestScenarioGenerateBytes1024HasBroadByteRangeAndLowBias(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("my_secret_seed"))
	qt.Assert(t, qt.IsNil(err))

	data, err := in.GenerateBytes(1024)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(data, 1024))

	var seen [256]bool
	var ones, total int
	for _, b := range data {
		seen[b] = true
		ones += bits.OnesCount8(b)
		total += 8
	}
	missing := 0
	for _, s := range seen {
		if !s {
			missing++
		}
	}
	// 1024 bytes is not enough to guarantee all 256 values occur with
	// certainty for an ideal PRNG either; this asserts the distribution
	// is not catastrophically skewed rather than literal full coverage.
	qt.Check(t, qt.IsTrue(missing < 40))

	bias := float64(ones)/float64(total) - 0.5
	if bias < 0 {
		bias = -bias
	}
	qt.Check(t, qt.IsTrue(bias < 0.01))
}

func TestScenarioDifferentSeedsAvalanche(t *testing.T) {
	t.Parallel()

	a, err := New([]byte("a"))
	qt.Assert(t, qt.IsNil(err))
	b, err := New([]byte("b"))
	qt.Assert(t, qt.IsNil(err))

	blockA, blockB := a.GenerateBlock(), b.GenerateBlock()

	dist := 0
	for i := range blockA {
		dist += bits.OnesCount8(blockA[i] ^ blockB[i])
	}
	qt.Check(t, qt.IsTrue(dist >= 40))
}

// --- Boundary behaviors ---

func TestGenerateBytesNegativeReturnsError(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("boundary"))
	qt.Assert(t, qt.IsNil(err))

	_, err = in.GenerateBytes(-1)
	qt.Check(t, qt.ErrorIs(err, ErrNegativeLength))
}

func TestGenerateBytesZeroReturnsEmpty(t *testing.T) {
	t.Parallel()

	in, err := New([]byte("boundary zero"))
	qt.Assert(t, qt.IsNil(err))

	got, err := in.GenerateBytes(0)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.HasLen(got, 0))
}

func TestSingleByteSeedConstructs(t *testing.T) {
	t.Parallel()

	in, err := New([]byte{0x42})
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(in.Stats().Edges > 0))
}

func TestLargeSeedConstructs(t *testing.T) {
	t.Parallel()

	seed := bytes.Repeat([]byte("x"), 1<<20+1)
	in, err := New(seed)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(in.Stats().Edges > 0))
}

func TestModesAllConstructSuccessfully(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeAffine, ModeDirect, ModeHybrid} {
		in, err := New([]byte("mode check"), WithMode(mode))
		qt.Assert(t, qt.IsNil(err))
		qt.Check(t, qt.Equals(in.Stats().Mode, mode))
	}
}
