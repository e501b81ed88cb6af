package credential

import (
	"github.com/anupsv/sigmaproofs/internal/common"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
	"github.com/anupsv/sigmaproofs/pkg/sigma"
	"github.com/anupsv/sigmaproofs/pkg/wire"
)

// Label is the Fiat-Shamir domain-separation string for the linked
// relation: C = x*G + r*H and Y = x*G over a shared x.
const Label = common.LabelLinkedAttribute

// Builder assembles a linked attribute statement: a hidden scalar bound
// into both a Pedersen commitment and a Schnorr public key.
type Builder struct {
	g, h     group.Element
	x, r     group.Scalar
	hasBases bool
	hasAttr  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetBases sets the Pedersen bases G, H. G doubles as the Schnorr base for
// the bound public key Y = x*G.
func (b *Builder) SetBases(g, h group.Element) *Builder {
	b.g, b.h = g, h
	b.hasBases = true
	return b
}

// SetAttribute sets the hidden attribute x and the commitment blinding
// factor r.
func (b *Builder) SetAttribute(x, r group.Scalar) *Builder {
	b.x, b.r = x, r
	b.hasAttr = true
	return b
}

// Build computes C and Y from the configured bases and attribute and
// returns the resulting Statement.
func (b *Builder) Build() (*Statement, error) {
	if !b.hasBases || !b.hasAttr {
		return nil, ErrIncompleteBuilder
	}
	c := group.ScalarMul(b.x, b.g).Add(group.ScalarMul(b.r, b.h))
	y := group.ScalarMul(b.x, b.g)
	return &Statement{g: b.g, h: b.h, x: b.x, r: b.r, c: c, y: y}, nil
}

// Statement is a built linked attribute: the witness (x, r) together with
// the public commitment C and public key Y it was derived from.
type Statement struct {
	g, h group.Element
	x, r group.Scalar
	c, y group.Element
}

// Commitment returns C = x*G + r*H.
func (s *Statement) Commitment() group.Element { return s.c }

// PublicKey returns Y = x*G.
func (s *Statement) PublicKey() group.Element { return s.y }

func buildRelation(g, h, c, y group.Element) (*relation.Relation, error) {
	r := relation.New()
	x := r.AllocateScalars(1)
	blind := r.AllocateScalars(1)
	e := r.AllocateElements(4)
	if err := r.SetElement(e, g); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+1, h); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+2, c); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+3, y); err != nil {
		return nil, err
	}
	commitTerms := []relation.Term{
		{ScalarIndex: x, ElementIndex: e},
		{ScalarIndex: blind, ElementIndex: e + 1},
	}
	if err := r.AddEquation(c, commitTerms); err != nil {
		return nil, err
	}
	if err := r.AddEquationSimple(y, x, e); err != nil {
		return nil, err
	}
	return r, nil
}

func publicInputs(g, h, c, y group.Element) []group.Element {
	return []group.Element{g, h, c, y}
}

func deriveChallenge(g, h, c, y group.Element, commitment []group.Element, message []byte) (group.Scalar, error) {
	return common.DeriveChallenge(Label, publicInputs(g, h, c, y), commitment, message)
}

// Prove produces a proof that the statement's commitment and public key
// share the same hidden attribute, binding message into the transcript.
func (s *Statement) Prove(message []byte) ([]byte, error) {
	rel, err := buildRelation(s.g, s.h, s.c, s.y)
	if err != nil {
		return nil, err
	}
	defer rel.Destroy()

	commitment, state, err := sigma.Commit(rel, []group.Scalar{s.x, s.r})
	if err != nil {
		return nil, err
	}
	chal, err := deriveChallenge(s.g, s.h, s.c, s.y, commitment, message)
	if err != nil {
		state.Destroy()
		return nil, err
	}
	response, err := sigma.Response(state, chal)
	if err != nil {
		return nil, err
	}
	return wire.Serialize(commitment, response), nil
}
