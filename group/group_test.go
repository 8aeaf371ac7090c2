package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorsAreOnCurve(t *testing.T) {
	for _, d := range []Descriptor{Secp256k1(), Secp256r1(), Secp384r1(), Secp160k1()} {
		t.Run(d.Name, func(t *testing.T) {
			params := d.Curve.Params()
			require.NotNil(t, params)
			assert.True(t, d.Curve.IsOnCurve(params.Gx, params.Gy), "generator must be on curve")
			assert.GreaterOrEqual(t, d.ByteLength*8, params.BitSize-7, "byte length must cover the field size")
		})
	}
}

func TestSecp256k1MatchesWellKnownGenerator(t *testing.T) {
	d := Secp256k1()
	params := d.Curve.Params()
	assert.Equal(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", hexLower(params.Gx, 32))
}

func hexLower(x interface{ Bytes() []byte }, n int) string {
	b := x.Bytes()
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	const hexdigits = "0123456789abcdef"
	s := make([]byte, 0, 2*n)
	for _, c := range out {
		s = append(s, hexdigits[c>>4], hexdigits[c&0xf])
	}
	return string(s)
}
