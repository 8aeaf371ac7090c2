// Package group supplies the elliptic-curve groups the ring-signature
// engine is built over. It does no curve arithmetic of its own: each
// Descriptor just names a crypto/elliptic.Curve backend and the extra
// Weierstrass coefficient that curve arithmetic leaves out of
// elliptic.CurveParams but point compression needs.
package group

import (
	"crypto/elliptic"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1"
)

// Descriptor names one elliptic-curve group: its crypto/elliptic backend,
// the Weierstrass "a" coefficient of y^2 = x^3 + ax + b, and the byte
// length of a field element (and so of a scalar and a compressed point's
// X coordinate).
type Descriptor struct {
	Name       string
	Curve      elliptic.Curve
	A          *big.Int
	ByteLength int
}

// Order returns the group order n.
func (d Descriptor) Order() *big.Int {
	return new(big.Int).Set(d.Curve.Params().N)
}

// Secp256k1 returns the descriptor for the Bitcoin/Koblitz curve, backed by
// decred's elliptic.Curve-compatible secp256k1 implementation.
func Secp256k1() Descriptor {
	return Descriptor{
		Name:       "secp256k1",
		Curve:      secp256k1.S256(),
		A:          big.NewInt(0),
		ByteLength: 32,
	}
}

// Secp256r1 returns the descriptor for NIST P-256.
func Secp256r1() Descriptor {
	return Descriptor{
		Name:       "secp256r1",
		Curve:      elliptic.P256(),
		A:          nistA(elliptic.P256()),
		ByteLength: 32,
	}
}

// Secp384r1 returns the descriptor for NIST P-384.
func Secp384r1() Descriptor {
	return Descriptor{
		Name:       "secp384r1",
		Curve:      elliptic.P384(),
		A:          nistA(elliptic.P384()),
		ByteLength: 48,
	}
}

// nistA computes a = p-3, the Weierstrass coefficient shared by every NIST
// prime curve.
func nistA(c elliptic.Curve) *big.Int {
	a := new(big.Int).Sub(c.Params().P, big.NewInt(3))
	return a
}

// Secp160k1 returns the descriptor for the SEC2 secp160k1 curve, used by
// a low-strength test hasher. No third-party package implements this
// curve, so its domain parameters are wired directly from SEC2 section
// 2.3.3.
func Secp160k1() Descriptor {
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73", 16)
	n, _ := new(big.Int).SetString("0100000000000000000001B8FA16DFAB9ACA16B6B3", 16)
	gx, _ := new(big.Int).SetString("3B4C382CE37AA192A4019E763036F4F5DD4D7EBB", 16)
	gy, _ := new(big.Int).SetString("938CF935318FDCED6BC28286531733C3F03C4FEE", 16)
	b, _ := new(big.Int).SetString("0000000000000000000000000000000000000007", 16)

	curve := &elliptic.CurveParams{
		P:       p,
		N:       n,
		B:       b,
		Gx:      gx,
		Gy:      gy,
		BitSize: 160,
		Name:    "secp160k1",
	}

	return Descriptor{
		Name:       "secp160k1",
		Curve:      curve,
		A:          big.NewInt(0),
		ByteLength: 20,
	}
}
