package ringsig

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is a supported digest for one named hasher.

	"github.com/pkg/errors"
	"github.com/valeh/ring-sig/group"
)

// Hasher bundles a curve group with a digest algorithm. It is immutable
// once constructed and safe for concurrent use by any number of
// goroutines.
type Hasher struct {
	descriptor group.Descriptor
	name       string
	newDigest  func() hash.Hash
	digestBits int
	order      *big.Int
	ceiling    *big.Int // C = floor((2^L-1)/n) * n
}

func newHasher(name string, d group.Descriptor, newDigest func() hash.Hash, digestBits int) *Hasher {
	n := d.Order()

	if d.ByteLength*8 != digestBits {
		panic(errors.Wrapf(ErrIncompatibleHasher, "%s: group byte length %d*8 != digest bit length %d", name, d.ByteLength, digestBits))
	}

	maxDigest := new(big.Int).Lsh(big.NewInt(1), uint(digestBits))
	maxDigest.Sub(maxDigest, big.NewInt(1))
	if maxDigest.Cmp(n) < 0 {
		panic(errors.Wrapf(ErrIncompatibleHasher, "%s: digest range too small for group order", name))
	}

	ceiling := new(big.Int).Div(maxDigest, n)
	ceiling.Mul(ceiling, n)

	return &Hasher{
		descriptor: d,
		name:       name,
		newDigest:  newDigest,
		digestBits: digestBits,
		order:      n,
		ceiling:    ceiling,
	}
}

// Named, process-wide Hasher constants. Each is built once at package
// init and then reused for the lifetime of the process.
var (
	Secp256k1Sha256    = newHasher("secp256k1-sha256", group.Secp256k1(), sha256.New, 256)
	Secp256r1Sha256    = newHasher("secp256r1-sha256", group.Secp256r1(), sha256.New, 256)
	Secp384r1Sha384    = newHasher("secp384r1-sha384", group.Secp384r1(), sha512.New384, 384)
	Secp160k1Ripemd160 = newHasher("secp160k1-ripemd160", group.Secp160k1(), ripemd160.New, 160)
)

// Equals reports whether h and other share the same group and digest
// algorithm.
func (h *Hasher) Equals(other *Hasher) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.name == other.name
}

// HashString uniformly hashes bytes into [0, n) using feedback rejection
// sampling. The digest is re-hashed on rejection, not the original input
// — this must stay bit-exact for interoperability.
func (h *Hasher) HashString(b []byte) *big.Int {
	s := b
	for {
		d := h.newDigest()
		d.Write(s)
		digest := d.Sum(nil)

		v := new(big.Int).SetBytes(digest)
		if v.Cmp(h.ceiling) < 0 {
			return v.Mod(v, h.order)
		}
		s = digest
	}
}

// HashArray canonically hashes a heterogeneous tuple of text strings,
// integers and curve points. Anything else is ErrUnsupportedHashInput.
func (h *Hasher) HashArray(items ...any) (*big.Int, error) {
	der, err := h.derEncode(items)
	if err != nil {
		return nil, err
	}
	return h.HashString(der), nil
}

func (h *Hasher) derEncode(items []any) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, item := range items {
			switch v := item.(type) {
			case string:
				b.AddASN1(casn1.UTF8String, func(b *cryptobyte.Builder) {
					b.AddBytes([]byte(v))
				})
			case int:
				b.AddASN1BigInt(big.NewInt(int64(v)))
			case int64:
				b.AddASN1BigInt(big.NewInt(v))
			case *big.Int:
				b.AddASN1BigInt(v)
			case point:
				b.AddASN1(casn1.OCTET_STRING, func(b *cryptobyte.Builder) {
					b.AddBytes(h.compressPoint(v))
				})
			default:
				b.SetError(ErrUnsupportedHashInput)
			}
		}
	})
	return b.Bytes()
}

// HashPoint maps a curve point to an independent point on the same curve:
// k = hash_array([P.x, P.y]), return k*G. This is the foundation of the
// key-image construction.
func (h *Hasher) HashPoint(p point) point {
	k, err := h.HashArray(p.X, p.Y)
	if err != nil {
		// p.X and p.Y are always *big.Int, an always-supported type.
		panic(err)
	}
	x, y := h.descriptor.Curve.ScalarBaseMult(k.Bytes())
	return point{X: x, Y: y}
}

// prngState is the mutable [seed, counter] pair backing both the ring
// shuffle and the ring-closure randomness. Sign shuffles the ring and then
// keeps drawing from the same counter sequence for the ephemeral nonce and
// the non-signer responses, rather than starting a fresh counter for each.
type prngState struct {
	seed    *big.Int
	counter int64
}

func newPRNGState(seed *big.Int) *prngState {
	return &prngState{seed: new(big.Int).Set(seed), counter: 0}
}

// draw returns the next uniform scalar in [0, n) from the state and
// advances the counter.
func (h *Hasher) draw(p *prngState) *big.Int {
	v, err := h.HashArray(p.seed, p.counter)
	if err != nil {
		// seed (*big.Int) and counter (int64) are always supported.
		panic(err)
	}
	p.counter++
	return v
}

// nextRand draws a value in [0, m) free of modular bias: reject samples
// >= n - (n mod m), then reduce mod m.
func (h *Hasher) nextRand(m int, p *prngState) int {
	bound := new(big.Int).Mod(h.order, big.NewInt(int64(m)))
	bound.Sub(h.order, bound)

	for {
		r := h.draw(p)
		if r.Cmp(bound) < 0 {
			return int(new(big.Int).Mod(r, big.NewInt(int64(m))).Int64())
		}
	}
}

// Shuffle deterministically permutes keys using seed via bottom-up
// Fisher-Yates.
func (h *Hasher) Shuffle(keys []*PublicKey, seed *big.Int) []*PublicKey {
	out := make([]*PublicKey, len(keys))
	copy(out, keys)
	h.shuffleInPlace(out, newPRNGState(seed))
	return out
}

// shuffleInPlace is Shuffle's guts, taking an explicit state so Sign can
// keep drawing from it afterwards (see prngState).
func (h *Hasher) shuffleInPlace(out []*PublicKey, state *prngState) {
	for i := len(out) - 1; i >= 1; i-- {
		r := h.nextRand(i+1, state)
		out[i], out[r] = out[r], out[i]
	}
}
