package sigma

import (
	"testing"

	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
)

func schnorrRelation(t *testing.T, y group.Element) (*relation.Relation, int) {
	t.Helper()
	r := relation.New()
	varX := r.AllocateScalars(1)
	g := r.AllocateElements(2)
	if err := r.SetElement(g, group.GeneratorElement()); err != nil {
		t.Fatalf("SetElement: %v", err)
	}
	if err := r.SetElement(g+1, y); err != nil {
		t.Fatalf("SetElement: %v", err)
	}
	if err := r.AddEquationSimple(y, varX, g); err != nil {
		t.Fatalf("AddEquationSimple: %v", err)
	}
	return r, varX
}

func randomScalar(t *testing.T) group.Scalar {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

// TestCompleteness exercises property 1 of spec section 8: an honest
// prover's transcript always verifies.
func TestCompleteness(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	commitment, state, err := Commit(r, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	resp, err := Response(state, c)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if !Verify(r, commitment, c, resp) {
		t.Fatalf("honest transcript failed to verify")
	}
}

// TestSoundnessWrongWitness exercises property 2: a prover using the
// wrong witness does not verify except with negligible probability.
func TestSoundnessWrongWitness(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	wrong := randomScalar(t)
	if wrong.Equal(x) {
		t.Skip("random collision, vanishingly unlikely")
	}

	commitment, state, err := Commit(r, []group.Scalar{wrong})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	resp, err := Response(state, c)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if Verify(r, commitment, c, resp) {
		t.Fatalf("proof with wrong witness verified")
	}
}

// TestTranscriptBinding exercises property 3: flipping the challenge used
// for an otherwise identical (commitment, response) pair breaks
// verification.
func TestTranscriptBinding(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	commitment, state, err := Commit(r, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	resp, err := Response(state, c)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}

	other := randomScalar(t)
	if other.Equal(c) {
		t.Skip("random collision, vanishingly unlikely")
	}
	if Verify(r, commitment, other, resp) {
		t.Fatalf("verification should fail under a different challenge")
	}
}

// TestResponseConsumesState exercises the INIT -> AWAIT_CHALLENGE -> DONE
// state machine: Response may not be called twice.
func TestResponseConsumesState(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	_, state, err := Commit(r, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	if _, err := Response(state, c); err != nil {
		t.Fatalf("first Response: %v", err)
	}
	if _, err := Response(state, c); err != ErrStateConsumed {
		t.Fatalf("expected ErrStateConsumed on reuse, got %v", err)
	}
}

// TestSimulatorProducesValidTranscript exercises property 5: for any
// challenge, the simulator's (T, c, r) verifies without knowledge of the
// witness.
func TestSimulatorProducesValidTranscript(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	c := randomScalar(t)
	resp, err := SimulateResponse(r.Map.NumScalars())
	if err != nil {
		t.Fatalf("SimulateResponse: %v", err)
	}
	commitment, err := SimulateCommitment(r, c, resp)
	if err != nil {
		t.Fatalf("SimulateCommitment: %v", err)
	}
	if !Verify(r, commitment, c, resp) {
		t.Fatalf("simulated transcript failed to verify")
	}
}

func TestCommitRejectsWitnessLengthMismatch(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	if _, _, err := Commit(r, []group.Scalar{}); err != ErrWitnessLength {
		t.Fatalf("expected ErrWitnessLength, got %v", err)
	}
}

func TestVerifyRejectsLengthMismatch(t *testing.T) {
	x := randomScalar(t)
	y := group.ScalarBaseMul(x)
	r, _ := schnorrRelation(t, y)

	commitment, state, err := Commit(r, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	resp, err := Response(state, c)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}

	if Verify(r, commitment, c, append(resp, randomScalar(t))) {
		t.Fatalf("Verify should reject a response vector of the wrong length")
	}
	if Verify(r, append(commitment, group.IdentityElement()), c, resp) {
		t.Fatalf("Verify should reject a commitment vector of the wrong length")
	}
}

func TestDLEQSharedWitnessCompleteness(t *testing.T) {
	x := randomScalar(t)
	g1 := group.GeneratorElement()
	g2 := group.ScalarBaseMul(randomScalar(t))
	h1 := group.ScalarMul(x, g1)
	h2 := group.ScalarMul(x, g2)

	r := relation.New()
	varX := r.AllocateScalars(1)
	e := r.AllocateElements(4)
	_ = r.SetElement(e, g1)
	_ = r.SetElement(e+1, h1)
	_ = r.SetElement(e+2, g2)
	_ = r.SetElement(e+3, h2)
	_ = r.AddEquationSimple(h1, varX, e)
	_ = r.AddEquationSimple(h2, varX, e+2)

	commitment, state, err := Commit(r, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c := randomScalar(t)
	resp, err := Response(state, c)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if !Verify(r, commitment, c, resp) {
		t.Fatalf("DLEQ-shaped transcript failed to verify")
	}
}
