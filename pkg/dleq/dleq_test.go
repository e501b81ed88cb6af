package dleq

import (
	"testing"

	"github.com/anupsv/sigmaproofs/pkg/group"
)

func randomBase(t *testing.T) group.Element {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return group.ScalarBaseMul(s)
}

func scenario(t *testing.T) (x group.Scalar, g1, h1, g2, h2 group.Element) {
	t.Helper()
	var err error
	x, err = group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	g1 = group.GeneratorElement()
	g2 = randomBase(t)
	h1 = group.ScalarMul(x, g1)
	h2 = group.ScalarMul(x, g2)
	return
}

func TestProveVerifyRoundTrip(t *testing.T) {
	x, g1, h1, g2, h2 := scenario(t)
	msg := []byte("vrf output binding")

	proof, err := Prove(x, g1, h1, g2, h2, msg)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(proof) != 96 {
		t.Fatalf("proof length = %d, want 96", len(proof))
	}
	if !Verify(g1, h1, g2, h2, msg, proof) {
		t.Fatalf("Verify rejected an honestly generated proof")
	}
}

func TestVerifyRejectsBrokenEquality(t *testing.T) {
	x, g1, h1, g2, _ := scenario(t)
	other, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	if other.Equal(x) {
		t.Skip("random collision, vanishingly unlikely")
	}
	brokenH2 := group.ScalarMul(other, g2)

	proof, err := Prove(x, g1, h1, g2, brokenH2, nil)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(g1, h1, g2, brokenH2, nil, proof) {
		t.Fatalf("Verify accepted a proof whose bases do not share a discrete log")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	x, g1, h1, g2, h2 := scenario(t)

	proof, err := Prove(x, g1, h1, g2, h2, []byte("request-1"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(g1, h1, g2, h2, []byte("request-2"), proof) {
		t.Fatalf("Verify accepted a proof under a different message")
	}
}
