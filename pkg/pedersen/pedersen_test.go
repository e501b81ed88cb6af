package pedersen

import (
	"testing"

	"github.com/anupsv/sigmaproofs/pkg/group"
)

func bases(t *testing.T) (g, h group.Element) {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return group.GeneratorElement(), group.ScalarBaseMul(s)
}

func randScalar(t *testing.T) group.Scalar {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func TestCommitProveVerifyRoundTrip(t *testing.T) {
	g, h := bases(t)
	x, r := randScalar(t), randScalar(t)
	c := Commit(x, r, g, h)
	msg := []byte("invoice #42")

	proof, err := Prove(x, r, g, h, c, msg)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(proof) != 96 {
		t.Fatalf("proof length = %d, want 96", len(proof))
	}
	if !Verify(g, h, c, msg, proof) {
		t.Fatalf("Verify rejected an honestly generated proof")
	}
}

func TestVerifyRejectsWrongOpening(t *testing.T) {
	g, h := bases(t)
	x, r := randScalar(t), randScalar(t)
	c := Commit(x, r, g, h)

	wrongX := randScalar(t)
	if wrongX.Equal(x) {
		t.Skip("random collision, vanishingly unlikely")
	}

	proof, err := Prove(wrongX, r, g, h, c, nil)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(g, h, c, nil, proof) {
		t.Fatalf("Verify accepted a proof built with the wrong witness")
	}
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	g, h := bases(t)
	x, r := randScalar(t), randScalar(t)
	c := Commit(x, r, g, h)
	decoy := Commit(randScalar(t), randScalar(t), g, h)

	proof, err := Prove(x, r, g, h, c, nil)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(g, h, decoy, nil, proof) {
		t.Fatalf("Verify accepted a proof against an unrelated commitment")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	g, h := bases(t)
	x, r := randScalar(t), randScalar(t)
	c := Commit(x, r, g, h)

	proof, err := Prove(x, r, g, h, c, []byte("version-1"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if Verify(g, h, c, []byte("version-2"), proof) {
		t.Fatalf("Verify accepted a proof under a different message")
	}
}
