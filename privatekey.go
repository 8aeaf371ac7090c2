package ringsig

import (
	"encoding/hex"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// PrivateKey is a scalar together with the Hasher it was drawn for.
// Immutable once constructed.
type PrivateKey struct {
	scalar *big.Int
	hasher *Hasher
}

// NewPrivateKey constructs a PrivateKey, rejecting scalar <= 0 or
// scalar >= n.
func NewPrivateKey(scalar *big.Int, hasher *Hasher) (*PrivateKey, error) {
	if scalar.Sign() <= 0 || scalar.Cmp(hasher.order) >= 0 {
		return nil, errors.Wrapf(ErrInvalidScalar, "scalar must satisfy 0 < s < %s", hasher.order.String())
	}
	return &PrivateKey{scalar: new(big.Int).Set(scalar), hasher: hasher}, nil
}

// GeneratePrivateKey draws a fresh, uniformly random private key for
// hasher: read bitSize/8+8 extra bytes of entropy and reduce into [1, n-1]
// to avoid modular bias.
func GeneratePrivateKey(hasher *Hasher, rand io.Reader) (*PrivateKey, error) {
	params := hasher.descriptor.Curve.Params()
	buf := make([]byte, params.BitSize/8+8)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, errors.Wrap(err, "ringsig: reading randomness")
	}

	k := new(big.Int).SetBytes(buf)
	nMinusOne := new(big.Int).Sub(hasher.order, big.NewInt(1))
	k.Mod(k, nMinusOne)
	k.Add(k, big.NewInt(1))

	return &PrivateKey{scalar: k, hasher: hasher}, nil
}

// Hasher returns the group/digest bundle this key was drawn for.
func (k *PrivateKey) Hasher() *Hasher {
	return k.hasher
}

// PublicKey derives P = scalar*G.
func (k *PrivateKey) PublicKey() *PublicKey {
	x, y := k.hasher.descriptor.Curve.ScalarBaseMult(k.scalar.Bytes())
	pub, err := newPublicKey(point{X: x, Y: y}, k.hasher)
	if err != nil {
		// scalar is in [1, n-1], so scalar*G is always a valid, non-identity
		// point on the curve.
		panic(err)
	}
	return pub
}

// KeyImage derives I = scalar * hasher.HashPoint(P). It is a
// deterministic function of the private scalar and the hasher alone — the
// same for every ring the key signs into.
func (k *PrivateKey) KeyImage() (x, y *big.Int) {
	pub := k.PublicKey()
	hp := k.hasher.HashPoint(pub.p)
	ix, iy := k.hasher.descriptor.Curve.ScalarMult(hp.X, hp.Y, k.scalar.Bytes())
	return ix, iy
}

// ToOctet returns the big-endian, fixed-width (group byte length) unsigned
// integer encoding of the scalar.
func (k *PrivateKey) ToOctet() []byte {
	out := make([]byte, k.hasher.descriptor.ByteLength)
	b := k.scalar.Bytes()
	copy(out[len(out)-len(b):], b)
	return out
}

// ToHex returns the lowercase hex encoding of ToOctet.
func (k *PrivateKey) ToHex() string {
	return hex.EncodeToString(k.ToOctet())
}

// PrivateKeyFromOctet decodes a fixed-width big-endian scalar.
func PrivateKeyFromOctet(data []byte, hasher *Hasher) (*PrivateKey, error) {
	return NewPrivateKey(new(big.Int).SetBytes(data), hasher)
}

// PrivateKeyFromHex decodes a lowercase-hex fixed-width scalar.
func PrivateKeyFromHex(s string, hasher *Hasher) (*PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return PrivateKeyFromOctet(data, hasher)
}
