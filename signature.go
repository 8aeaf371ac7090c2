package ringsig

import (
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Signature is a linkable ring signature: a key image, a starting
// challenge, and one response scalar per ring member. Immutable once
// constructed.
type Signature struct {
	keyImage  point
	hasher    *Hasher
	c0        *big.Int
	responses []*big.Int
}

// KeyImage returns the signature's key image point.
func (s *Signature) KeyImage() (x, y *big.Int) {
	return s.keyImage.X, s.keyImage.Y
}

// ChallengeSeed returns c0, the starting challenge.
func (s *Signature) ChallengeSeed() *big.Int {
	return new(big.Int).Set(s.c0)
}

// Responses returns a copy of the per-ring-member response scalars.
func (s *Signature) Responses() []*big.Int {
	out := make([]*big.Int, len(s.responses))
	for i, r := range s.responses {
		out[i] = new(big.Int).Set(r)
	}
	return out
}

// Sign produces a linkable ring signature over message, signed by k and
// anonymized among foreignKeys. foreignKeys must share k's Hasher. It
// returns the signature and the shuffled ring it was computed against;
// callers must transmit both.
func (k *PrivateKey) Sign(message []byte, foreignKeys []*PublicKey) (*Signature, *Ring, error) {
	for _, f := range foreignKeys {
		if !f.hasher.Equals(k.hasher) {
			return nil, nil, ErrHasherMismatch
		}
	}

	h := k.hasher
	curve := h.descriptor.Curve
	self := k.PublicKey()

	all := make([]*PublicKey, 0, len(foreignKeys)+1)
	all = append(all, self)
	all = append(all, foreignKeys...)
	m := len(all)

	// Derive the shuffle seed from the private scalar, the message, then
	// the foreign keys in caller order — using the scalar rather than the
	// public key keeps the shuffle unpredictable to outsiders.
	seedItems := make([]any, 0, len(foreignKeys)+2)
	seedItems = append(seedItems, k.scalar, string(message))
	for _, f := range foreignKeys {
		seedItems = append(seedItems, f.p)
	}
	seed, err := h.HashArray(seedItems...)
	if err != nil {
		return nil, nil, err
	}

	state := newPRNGState(seed)
	ring := make([]*PublicKey, m)
	copy(ring, all)
	h.shuffleInPlace(ring, state)

	pi := -1
	for i, pk := range ring {
		if pk == self {
			pi = i
			break
		}
	}
	if pi < 0 {
		panic("ringsig: signer's own key vanished during shuffle")
	}

	ix, iy := k.KeyImage()
	keyImage := point{X: ix, Y: iy}

	c := make([]*big.Int, m)
	s := make([]*big.Int, m)

	alpha := h.draw(state)
	lx, ly := curve.ScalarBaseMult(alpha.Bytes())
	hp := h.HashPoint(ring[pi].p)
	rx, ry := curve.ScalarMult(hp.X, hp.Y, alpha.Bytes())

	cNext, err := h.HashArray(string(message), point{X: lx, Y: ly}, point{X: rx, Y: ry})
	if err != nil {
		return nil, nil, err
	}
	j := (pi + 1) % m
	c[j] = cNext

	for j != pi {
		s[j] = h.draw(state)

		sx, sy := curve.ScalarBaseMult(s[j].Bytes())
		cx, cy := curve.ScalarMult(ring[j].p.X, ring[j].p.Y, c[j].Bytes())
		lx, ly = curve.Add(sx, sy, cx, cy)

		hpj := h.HashPoint(ring[j].p)
		r1x, r1y := curve.ScalarMult(hpj.X, hpj.Y, s[j].Bytes())
		r2x, r2y := curve.ScalarMult(keyImage.X, keyImage.Y, c[j].Bytes())
		rx, ry = curve.Add(r1x, r1y, r2x, r2y)

		next := (j + 1) % m
		cNext, err = h.HashArray(string(message), point{X: lx, Y: ly}, point{X: rx, Y: ry})
		if err != nil {
			return nil, nil, err
		}
		c[next] = cNext
		j = next
	}

	cx := new(big.Int).Mul(c[pi], k.scalar)
	spi := new(big.Int).Sub(alpha, cx)
	spi.Mod(spi, h.order)
	s[pi] = spi

	sig := &Signature{keyImage: keyImage, hasher: h, c0: c[0], responses: s}
	return sig, NewRing(ring), nil
}

// Verify recomputes the ring closure and accepts iff the challenge wraps
// back to c0. Any arithmetic mismatch, off-curve point, or length mismatch
// yields false, never an error.
func (s *Signature) Verify(message []byte, ring *Ring) bool {
	if ring == nil {
		return false
	}
	keys := ring.Keys
	m := len(keys)
	if m == 0 || len(s.responses) != m {
		return false
	}

	h := s.hasher
	curve := h.descriptor.Curve
	order := h.order

	for _, key := range keys {
		if !key.hasher.Equals(h) {
			return false
		}
	}

	c := s.c0
	if c == nil || c.Sign() < 0 || c.Cmp(order) >= 0 {
		return false
	}

	for j := 0; j < m; j++ {
		resp := s.responses[j]
		if resp == nil || resp.Sign() < 0 || resp.Cmp(order) >= 0 {
			return false
		}

		sx, sy := curve.ScalarBaseMult(resp.Bytes())
		cx, cy := curve.ScalarMult(keys[j].p.X, keys[j].p.Y, c.Bytes())
		lx, ly := curve.Add(sx, sy, cx, cy)

		hp := h.HashPoint(keys[j].p)
		r1x, r1y := curve.ScalarMult(hp.X, hp.Y, resp.Bytes())
		r2x, r2y := curve.ScalarMult(s.keyImage.X, s.keyImage.Y, c.Bytes())
		rx, ry := curve.Add(r1x, r1y, r2x, r2y)

		next, err := h.HashArray(string(message), point{X: lx, Y: ly}, point{X: rx, Y: ry})
		if err != nil {
			return false
		}
		c = next
	}

	return c.Cmp(s.c0) == 0
}

// ToDER encodes the signature as SEQUENCE { key_image OCTET STRING, c0
// INTEGER, responses SEQUENCE OF INTEGER }. Encoding is deterministic: two
// implementations signing the same inputs and encoding with canonical DER
// must produce byte-identical output.
func (s *Signature) ToDER() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddBytes(s.hasher.compressPoint(s.keyImage))
		})
		b.AddASN1BigInt(s.c0)
		b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, r := range s.responses {
				b.AddASN1BigInt(r)
			}
		})
	})
	return b.Bytes()
}

// SignatureFromDER decodes a DER-encoded signature under the given Hasher,
// validating ASN.1 structure, scalar ranges, curve membership of the key
// image, and non-emptiness of responses.
func SignatureFromDER(data []byte, hasher *Hasher) (*Signature, error) {
	input := cryptobyte.String(data)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, casn1.SEQUENCE) || !input.Empty() {
		return nil, errors.Wrap(ErrInvalidEncoding, "not a DER SEQUENCE")
	}

	var keyImageBytes []byte
	if !seq.ReadASN1Bytes(&keyImageBytes, casn1.OCTET_STRING) {
		return nil, errors.Wrap(ErrInvalidEncoding, "missing key image octet string")
	}

	var c0 big.Int
	if !seq.ReadASN1Integer(&c0) {
		return nil, errors.Wrap(ErrInvalidEncoding, "missing challenge seed integer")
	}

	var respSeq cryptobyte.String
	if !seq.ReadASN1(&respSeq, casn1.SEQUENCE) || !seq.Empty() {
		return nil, errors.Wrap(ErrInvalidEncoding, "missing responses sequence")
	}

	var responses []*big.Int
	for !respSeq.Empty() {
		var r big.Int
		if !respSeq.ReadASN1Integer(&r) {
			return nil, errors.Wrap(ErrInvalidEncoding, "malformed response integer")
		}
		responses = append(responses, &r)
	}
	if len(responses) == 0 {
		return nil, ErrEmptyRing
	}

	if c0.Sign() < 0 || c0.Cmp(hasher.order) >= 0 {
		return nil, errors.Wrap(ErrInvalidEncoding, "challenge seed out of range")
	}
	for _, r := range responses {
		if r.Sign() < 0 || r.Cmp(hasher.order) >= 0 {
			return nil, errors.Wrap(ErrInvalidEncoding, "response out of range")
		}
	}

	ki, err := hasher.decompressPoint(keyImageBytes)
	if err != nil {
		return nil, err
	}

	return &Signature{keyImage: ki, hasher: hasher, c0: &c0, responses: responses}, nil
}
