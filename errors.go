package ringsig

import "github.com/pkg/errors"

// Sentinel error kinds. Construction errors surface immediately; callers
// can match them with errors.Is. Verification failure is never an error —
// it is always a plain bool (see Signature.Verify).
var (
	// ErrInvalidScalar is returned when a scalar is zero or >= the group order.
	ErrInvalidScalar = errors.New("ringsig: scalar out of range")

	// ErrIncompatibleHasher is returned when a group and digest algorithm
	// don't satisfy a Hasher's internal invariants.
	ErrIncompatibleHasher = errors.New("ringsig: group and digest are incompatible")

	// ErrUnsupportedHashInput is returned by hash_array for any item that
	// isn't a text string, integer, or curve point.
	ErrUnsupportedHashInput = errors.New("ringsig: unsupported hash_array item type")

	// ErrInvalidEncoding is returned for malformed DER, wrong ASN.1 tags,
	// off-curve points, or out-of-range integers encountered on decode.
	ErrInvalidEncoding = errors.New("ringsig: invalid encoding")

	// ErrEmptyRing is returned when a ring signature is decoded with zero
	// responses.
	ErrEmptyRing = errors.New("ringsig: ring signature has no responses")

	// ErrHasherMismatch is returned when Sign is given foreign keys that
	// don't all share the signer's hasher. Verify reports such a ring as
	// false instead.
	ErrHasherMismatch = errors.New("ringsig: foreign keys use a different hasher")
)
