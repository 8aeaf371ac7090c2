package ringsig

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateKeyRejectsOutOfRangeScalars(t *testing.T) {
	h := Secp256k1Sha256

	_, err := NewPrivateKey(big.NewInt(0), h)
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = NewPrivateKey(h.order, h)
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = NewPrivateKey(big.NewInt(1), h)
	assert.NoError(t, err)
}

// TestKeyOneVectors pins a known-answer case: key = PrivateKey(1) on
// Secp256k1Sha256. This is mechanical (scalar*G with scalar=1 is just the
// generator), so it checks the public-key/key-image plumbing precisely
// without depending on the signing algorithm's internal counter sequence.
func TestKeyOneVectors(t *testing.T) {
	h := Secp256k1Sha256
	key, err := NewPrivateKey(big.NewInt(1), h)
	require.NoError(t, err)

	assert.Equal(t,
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		key.PublicKey().ToHex(),
	)

	wantX, ok := new(big.Int).SetString("19808304348355547845585283516832906889081321816618757912787193259813413622341", 10)
	require.True(t, ok)
	wantY, ok := new(big.Int).SetString("6456680440731674563715553325029463353567815591885844101408227481418612066782", 10)
	require.True(t, ok)

	ix, iy := key.KeyImage()
	assert.Equal(t, 0, ix.Cmp(wantX), "key image X")
	assert.Equal(t, 0, iy.Cmp(wantY), "key image Y")
}

func TestKeyImageIsIndependentOfForeignKeys(t *testing.T) {
	h := Secp256k1Sha256
	key, err := NewPrivateKey(big.NewInt(7), h)
	require.NoError(t, err)

	ix1, iy1 := key.KeyImage()

	other, err := NewPrivateKey(big.NewInt(99), h)
	require.NoError(t, err)
	foreign := []*PublicKey{other.PublicKey()}

	sig, _, err := key.Sign([]byte("msg"), foreign)
	require.NoError(t, err)

	six, siy := sig.KeyImage()
	assert.Equal(t, 0, ix1.Cmp(six))
	assert.Equal(t, 0, iy1.Cmp(siy))
}

func TestGeneratePrivateKeyProducesValidInRangeKeys(t *testing.T) {
	for _, h := range []*Hasher{Secp256k1Sha256, Secp256r1Sha256, Secp384r1Sha384, Secp160k1Ripemd160} {
		t.Run(h.name, func(t *testing.T) {
			key, err := GeneratePrivateKey(h, rand.Reader)
			require.NoError(t, err)

			assert.Equal(t, 1, key.scalar.Sign(), "generated scalar must be positive")
			assert.Equal(t, -1, key.scalar.Cmp(h.order), "generated scalar must be < n")

			back, err := NewPrivateKey(key.scalar, h)
			require.NoError(t, err, "a generated key must also satisfy NewPrivateKey's own range check")
			assert.Equal(t, key.ToHex(), back.ToHex())

			pub := key.PublicKey()
			assert.True(t, h.descriptor.Curve.IsOnCurve(pub.p.X, pub.p.Y))
		})
	}
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	h := Secp256k1Sha256
	key, err := NewPrivateKey(big.NewInt(424242), h)
	require.NoError(t, err)

	back, err := PrivateKeyFromHex(key.ToHex(), h)
	require.NoError(t, err)
	assert.Equal(t, key.ToHex(), back.ToHex())
}

func TestPublicKeyRoundTrip(t *testing.T) {
	h := Secp256k1Sha256
	key, err := NewPrivateKey(big.NewInt(13), h)
	require.NoError(t, err)
	pub := key.PublicKey()

	back, err := PublicKeyFromHex(pub.ToHex(), h)
	require.NoError(t, err)
	assert.True(t, pub.Equal(back))
}

func TestPublicKeyRejectsMalformedEncodings(t *testing.T) {
	h := Secp256k1Sha256

	_, err := PublicKeyFromOctet([]byte{0x02, 0x01}, h)
	assert.ErrorIs(t, err, ErrInvalidEncoding, "wrong length must be rejected")

	bogus := make([]byte, 1+h.descriptor.ByteLength)
	bogus[0] = 0x04 // only 0x02/0x03 are valid compressed prefixes
	_, err = PublicKeyFromOctet(bogus, h)
	assert.ErrorIs(t, err, ErrInvalidEncoding, "invalid prefix must be rejected")
}
