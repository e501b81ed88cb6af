package relation

import (
	"testing"

	"github.com/anupsv/sigmaproofs/pkg/group"
)

func mustScalar(t *testing.T) group.Scalar {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func TestEvalSchnorrShape(t *testing.T) {
	x := mustScalar(t)
	y := group.ScalarBaseMul(x)

	r := New()
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
	if err := r.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	out, err := Eval(&r.Map, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if len(out) != 1 || !out[0].Equal(y) {
		t.Fatalf("Eval(x) != Y")
	}
}

func TestEvalRejectsWrongScalarCount(t *testing.T) {
	r := New()
	varX := r.AllocateScalars(1)
	g := r.AllocateElements(2)
	_ = r.SetElement(g, group.GeneratorElement())
	_ = r.SetElement(g+1, group.GeneratorElement())
	_ = r.AddEquationSimple(group.GeneratorElement(), varX, g)

	if _, err := Eval(&r.Map, []group.Scalar{}); err != ErrInvalidRelation {
		t.Fatalf("expected ErrInvalidRelation, got %v", err)
	}
}

func TestAddEquationRejectsZeroTerms(t *testing.T) {
	r := New()
	if err := r.AddEquation(group.IdentityElement(), nil); err != ErrInvalidRelation {
		t.Fatalf("expected ErrInvalidRelation for empty row, got %v", err)
	}
}

func TestAddEquationRejectsOutOfRangeIndex(t *testing.T) {
	r := New()
	r.AllocateScalars(1)
	r.AllocateElements(1)
	if err := r.AddEquationSimple(group.IdentityElement(), 5, 0); err != ErrInvalidRelation {
		t.Fatalf("expected ErrInvalidRelation for out-of-range scalar index, got %v", err)
	}
	if err := r.AddEquationSimple(group.IdentityElement(), 0, 5); err != ErrInvalidRelation {
		t.Fatalf("expected ErrInvalidRelation for out-of-range element index, got %v", err)
	}
}

func TestEvalRejectsUnsetElement(t *testing.T) {
	r := New()
	varX := r.AllocateScalars(1)
	g := r.AllocateElements(2)
	_ = r.SetElement(g, group.GeneratorElement())
	// g+1 deliberately left unset.
	_ = r.AddEquationSimple(group.IdentityElement(), varX, g)

	if _, err := Eval(&r.Map, []group.Scalar{mustScalar(t)}); err != ErrInvalidRelation {
		t.Fatalf("expected ErrInvalidRelation for unset element, got %v", err)
	}
}

func TestEvalSharedScalarAcrossRows(t *testing.T) {
	// DLEQ shape: two rows sharing one scalar variable.
	x := mustScalar(t)
	g1 := group.GeneratorElement()
	g2 := group.ScalarBaseMul(mustScalar(t))
	h1 := group.ScalarMul(x, g1)
	h2 := group.ScalarMul(x, g2)

	r := New()
	varX := r.AllocateScalars(1)
	e := r.AllocateElements(4)
	_ = r.SetElement(e, g1)
	_ = r.SetElement(e+1, h1)
	_ = r.SetElement(e+2, g2)
	_ = r.SetElement(e+3, h2)
	_ = r.AddEquationSimple(h1, varX, e)
	_ = r.AddEquationSimple(h2, varX, e+2)

	out, err := Eval(&r.Map, []group.Scalar{x})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !out[0].Equal(h1) || !out[1].Equal(h2) {
		t.Fatalf("shared-scalar evaluation mismatch")
	}
}

func TestEvalMultiTermRow(t *testing.T) {
	// Pedersen shape: C = x*G + r*H, a two-term row.
	x := mustScalar(t)
	rnd := mustScalar(t)
	g := group.GeneratorElement()
	h := group.ScalarBaseMul(mustScalar(t))
	c := group.ScalarMul(x, g).Add(group.ScalarMul(rnd, h))

	rel := New()
	varX := rel.AllocateScalars(1)
	varR := rel.AllocateScalars(1)
	e := rel.AllocateElements(2)
	_ = rel.SetElement(e, g)
	_ = rel.SetElement(e+1, h)
	_ = rel.AddEquation(c, []Term{{ScalarIndex: varX, ElementIndex: e}, {ScalarIndex: varR, ElementIndex: e + 1}})

	out, err := Eval(&rel.Map, []group.Scalar{x, rnd})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !out[0].Equal(c) {
		t.Fatalf("multi-term row evaluation mismatch")
	}
}
