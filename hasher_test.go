package ringsig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashStringIsBoundedAndDeterministic(t *testing.T) {
	h := Secp256k1Sha256
	v1 := h.HashString([]byte("hello"))
	v2 := h.HashString([]byte("hello"))
	require.Equal(t, 0, v1.Cmp(v2), "hash_string must be deterministic")
	assert.True(t, v1.Sign() >= 0 && v1.Cmp(h.order) < 0, "hash_string must land in [0, n)")
}

func TestHashArrayRejectsUnsupportedTypes(t *testing.T) {
	h := Secp256k1Sha256
	_, err := h.HashArray(3.14)
	assert.ErrorIs(t, err, ErrUnsupportedHashInput)
}

func TestHashArraySupportsClosedVariant(t *testing.T) {
	h := Secp256k1Sha256
	g := point{X: h.descriptor.Curve.Params().Gx, Y: h.descriptor.Curve.Params().Gy}
	_, err := h.HashArray("text", 7, big.NewInt(42), g)
	assert.NoError(t, err)
}

func TestHashArrayRejectsRawBytes(t *testing.T) {
	h := Secp256k1Sha256
	_, err := h.HashArray([]byte("raw message"))
	assert.ErrorIs(t, err, ErrUnsupportedHashInput, "message bytes must be converted to string before hashing, not passed raw")
}

func TestHashPointIsConsistentWithHashArray(t *testing.T) {
	h := Secp256k1Sha256
	g := point{X: h.descriptor.Curve.Params().Gx, Y: h.descriptor.Curve.Params().Gy}

	got := h.HashPoint(g)

	k, err := h.HashArray(g.X, g.Y)
	require.NoError(t, err)
	wx, wy := h.descriptor.Curve.ScalarBaseMult(k.Bytes())

	assert.Equal(t, 0, got.X.Cmp(wx))
	assert.Equal(t, 0, got.Y.Cmp(wy))
}

func TestShuffleIsDeterministicPermutation(t *testing.T) {
	h := Secp256k1Sha256
	keys := make([]*PublicKey, 5)
	for i := range keys {
		k, err := NewPrivateKey(big.NewInt(int64(i+1)), h)
		require.NoError(t, err)
		keys[i] = k.PublicKey()
	}

	seed := big.NewInt(12345)
	out1 := h.Shuffle(keys, seed)
	out2 := h.Shuffle(keys, seed)

	require.Len(t, out1, len(keys))
	for i := range out1 {
		assert.True(t, out1[i].Equal(out2[i]), "shuffle must be deterministic given the same seed")
	}

	seen := make(map[*PublicKey]bool)
	for _, k := range out1 {
		seen[k] = true
	}
	assert.Len(t, seen, len(keys), "shuffle must be a permutation, not a resample")
}

func TestNamedHashersAreDistinct(t *testing.T) {
	assert.False(t, Secp256k1Sha256.Equals(Secp256r1Sha256))
	assert.False(t, Secp256r1Sha256.Equals(Secp384r1Sha384))
	assert.False(t, Secp384r1Sha384.Equals(Secp160k1Ripemd160))
	assert.True(t, Secp256k1Sha256.Equals(Secp256k1Sha256))
}
