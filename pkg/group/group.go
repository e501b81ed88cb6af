package group

import (
	"crypto/rand"
	"fmt"

	"github.com/gtank/ristretto255"
)

// EncodedSize is the length, in bytes, of a canonical scalar or element
// encoding.
const EncodedSize = 32

// WideBytes is the length, in bytes, of the uniform input to the wide
// reduction used both for nonce sampling and for Fiat-Shamir challenge
// derivation.
const WideBytes = 64

// Scalar is an element of Z/lZ, where l is the Ristretto255 group order.
type Scalar struct {
	s *ristretto255.Scalar
}

// Element is a point on the Ristretto255 curve in its canonical
// representation.
type Element struct {
	e *ristretto255.Element
}

// RandomScalar draws a scalar uniformly at random using crypto/rand as the
// CSPRNG. This is the only place nonces are sampled; every call produces an
// independent value.
func RandomScalar() (Scalar, error) {
	var buf [WideBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return ScalarFromWideBytes(buf[:])
}

// ScalarFromWideBytes performs the wide reduction of 64 uniform bytes
// modulo the group order l (spec section 4.1, scalar_reduce).
func ScalarFromWideBytes(b []byte) (Scalar, error) {
	if len(b) != WideBytes {
		return Scalar{}, ErrInvalidLength
	}
	s, err := ristretto255.NewScalar().SetUniformBytes(b)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Scalar{s: s}, nil
}

// DecodeScalar parses a 32-byte canonical scalar encoding. It rejects any
// encoding that is not the minimal representative modulo l.
func DecodeScalar(b []byte) (Scalar, error) {
	if len(b) != EncodedSize {
		return Scalar{}, ErrInvalidLength
	}
	s, err := ristretto255.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Scalar{s: s}, nil
}

// Add returns x + y mod l.
func (x Scalar) Add(y Scalar) Scalar {
	return Scalar{s: ristretto255.NewScalar().Add(x.s, y.s)}
}

// Mul returns x * y mod l.
func (x Scalar) Mul(y Scalar) Scalar {
	return Scalar{s: ristretto255.NewScalar().Multiply(x.s, y.s)}
}

// Bytes returns the canonical 32-byte little-endian encoding of x.
func (x Scalar) Bytes() []byte {
	return x.s.Bytes()
}

// Equal reports whether x and y are the same scalar, in constant time.
func (x Scalar) Equal(y Scalar) bool {
	return x.s.Equal(y.s) == 1
}

// IsZero reports whether x is the zero scalar.
func (x Scalar) IsZero() bool {
	return x.Equal(Scalar{s: ristretto255.NewScalar()})
}

// IdentityElement returns the group identity, whose canonical encoding is
// the all-zero 32-byte string.
func IdentityElement() Element {
	return Element{e: ristretto255.NewIdentityElement()}
}

// GeneratorElement returns the fixed base generator G.
func GeneratorElement() Element {
	return Element{e: ristretto255.NewGeneratorElement()}
}

// DecodeElement parses a 32-byte canonical Ristretto255 point encoding,
// rejecting non-canonical representations. The identity point is a valid
// input and is not special-cased.
func DecodeElement(b []byte) (Element, error) {
	if len(b) != EncodedSize {
		return Element{}, ErrInvalidLength
	}
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(b)
	if err != nil {
		return Element{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Element{e: e}, nil
}

// ScalarBaseMul returns s*G, the fixed-generator multiplication.
func ScalarBaseMul(s Scalar) Element {
	return Element{e: ristretto255.NewIdentityElement().ScalarBaseMult(s.s)}
}

// ScalarMul returns s*p. p must already be a valid in-memory Element
// (obtained from DecodeElement, IdentityElement, GeneratorElement, or a
// group operation), so this never fails: the only place an invalid
// encoding can surface is DecodeElement.
func ScalarMul(s Scalar, p Element) Element {
	return Element{e: ristretto255.NewIdentityElement().ScalarMult(s.s, p.e)}
}

// Add returns p + q.
func (p Element) Add(q Element) Element {
	return Element{e: ristretto255.NewIdentityElement().Add(p.e, q.e)}
}

// Sub returns p - q.
func (p Element) Sub(q Element) Element {
	return Element{e: ristretto255.NewIdentityElement().Subtract(p.e, q.e)}
}

// Bytes returns the canonical 32-byte encoding of p.
func (p Element) Bytes() []byte {
	return p.e.Bytes()
}

// Equal reports whether p and q are the same point, in constant time.
func (p Element) Equal(q Element) bool {
	return p.e.Equal(q.e) == 1
}
