package ringsig

// Ring is an ordered sequence of public keys produced jointly with a
// Signature. Signatures do not embed the ring; callers are responsible
// for transmitting both together.
type Ring struct {
	Keys []*PublicKey
}

// NewRing wraps an ordered slice of public keys as a Ring.
func NewRing(keys []*PublicKey) *Ring {
	return &Ring{Keys: keys}
}

// Len returns the number of keys in the ring.
func (r *Ring) Len() int {
	return len(r.Keys)
}

// Bytes concatenates the compressed encoding of every key in ring order,
// useful for diagnostics and for binding a ring to an external transcript.
func (r *Ring) Bytes() []byte {
	var b []byte
	for _, k := range r.Keys {
		b = append(b, k.ToOctet()...)
	}
	return b
}
