package ringsig

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// PublicKey is a curve point together with the Hasher (group) it belongs
// to. It is immutable once constructed.
type PublicKey struct {
	p      point
	hasher *Hasher
}

// NewPublicKey builds a PublicKey from a raw point, rejecting points off
// the curve or equal to the identity.
func NewPublicKey(x, y *big.Int, hasher *Hasher) (*PublicKey, error) {
	return newPublicKey(point{X: x, Y: y}, hasher)
}

func newPublicKey(p point, hasher *Hasher) (*PublicKey, error) {
	if p.isIdentity() {
		return nil, errors.Wrap(ErrInvalidEncoding, "public key point is the identity")
	}
	if !hasher.descriptor.Curve.IsOnCurve(p.X, p.Y) {
		return nil, errors.Wrap(ErrInvalidEncoding, "public key point is not on curve")
	}
	return &PublicKey{p: p, hasher: hasher}, nil
}

// Point returns the key's curve point (X, Y).
func (k *PublicKey) Point() (x, y *big.Int) {
	return k.p.X, k.p.Y
}

// Hasher returns the group/digest bundle this key belongs to.
func (k *PublicKey) Hasher() *Hasher {
	return k.hasher
}

// ToOctet returns the SEC1 compressed encoding of the key.
func (k *PublicKey) ToOctet() []byte {
	return k.hasher.compressPoint(k.p)
}

// ToHex returns the lowercase hex encoding of ToOctet.
func (k *PublicKey) ToHex() string {
	return hex.EncodeToString(k.ToOctet())
}

// PublicKeyFromOctet decodes a compressed SEC1 point under the given
// Hasher's group.
func PublicKeyFromOctet(data []byte, hasher *Hasher) (*PublicKey, error) {
	p, err := hasher.decompressPoint(data)
	if err != nil {
		return nil, err
	}
	return newPublicKey(p, hasher)
}

// PublicKeyFromHex decodes a lowercase-hex compressed SEC1 point.
func PublicKeyFromHex(s string, hasher *Hasher) (*PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return PublicKeyFromOctet(data, hasher)
}

// Equal reports structural equality: same point, same hasher.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.hasher.Equals(other.hasher) && k.p.equal(other.p)
}
