package group

import "testing"

func TestScalarAddMulRoundTrip(t *testing.T) {
	a, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	b, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}

	sum := a.Add(b)
	decoded, err := DecodeScalar(sum.Bytes())
	if err != nil {
		t.Fatalf("DecodeScalar: %v", err)
	}
	if !decoded.Equal(sum) {
		t.Fatalf("round trip mismatch")
	}

	prod := a.Mul(b)
	if prod.Equal(a) || prod.Equal(b) {
		t.Fatalf("product unexpectedly equals an operand")
	}
}

func TestIdentityEncodesAllZero(t *testing.T) {
	b := IdentityElement().Bytes()
	for i, v := range b {
		if v != 0 {
			t.Fatalf("identity byte %d = %d, want 0", i, v)
		}
	}
}

func TestScalarBaseMulMatchesScalarMulOnGenerator(t *testing.T) {
	s, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	lhs := ScalarBaseMul(s)
	rhs := ScalarMul(s, GeneratorElement())
	if !lhs.Equal(rhs) {
		t.Fatalf("ScalarBaseMul(s) != ScalarMul(s, G)")
	}
}

func TestAddSubInverse(t *testing.T) {
	s, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	p := ScalarBaseMul(s)
	q := GeneratorElement()

	sum := p.Add(q)
	back := sum.Sub(q)
	if !back.Equal(p) {
		t.Fatalf("(p + q) - q != p")
	}
}

func TestDecodeElementRejectsBadLength(t *testing.T) {
	if _, err := DecodeElement(make([]byte, 31)); err != ErrInvalidLength {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestDecodeScalarRejectsNonCanonical(t *testing.T) {
	// 32 bytes of 0xff encode a value far above l: this is not a minimal
	// residue and must be rejected.
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = 0xff
	}
	if _, err := DecodeScalar(raw); err == nil {
		t.Fatalf("expected non-canonical scalar to be rejected")
	}
}
