package dleq

import (
	"github.com/anupsv/sigmaproofs/internal/common"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
	"github.com/anupsv/sigmaproofs/pkg/sigma"
	"github.com/anupsv/sigmaproofs/pkg/wire"
)

// Label is the canonical Fiat-Shamir domain-separation string. The
// original C implementation calls this protocol "chaum-pedersen"; see
// pkg/compat for that name surfaced as a Go-API alias only.
const Label = common.LabelDLEQ

// buildRelation constructs the two-equation relation h1 = x*g1, h2 = x*g2:
// scalar 0 is x, elements 0..3 are g1, h1, g2, h2 in that order — also the
// order they are absorbed into the transcript as public input.
func buildRelation(g1, h1, g2, h2 group.Element) (*relation.Relation, error) {
	r := relation.New()
	x := r.AllocateScalars(1)
	e := r.AllocateElements(4)
	if err := r.SetElement(e, g1); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+1, h1); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+2, g2); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+3, h2); err != nil {
		return nil, err
	}
	if err := r.AddEquationSimple(h1, x, e); err != nil {
		return nil, err
	}
	if err := r.AddEquationSimple(h2, x, e+2); err != nil {
		return nil, err
	}
	return r, nil
}

func publicInputs(g1, h1, g2, h2 group.Element) []group.Element {
	return []group.Element{g1, h1, g2, h2}
}

// Prove produces a proof that the caller knows x such that h1 = x*g1 and
// h2 = x*g2, binding message into the transcript. message may be nil.
func Prove(x group.Scalar, g1, h1, g2, h2 group.Element, message []byte) ([]byte, error) {
	r, err := buildRelation(g1, h1, g2, h2)
	if err != nil {
		return nil, err
	}
	defer r.Destroy()

	commitment, state, err := sigma.Commit(r, []group.Scalar{x})
	if err != nil {
		return nil, err
	}
	c, err := common.DeriveChallenge(Label, publicInputs(g1, h1, g2, h2), commitment, message)
	if err != nil {
		state.Destroy()
		return nil, err
	}
	response, err := sigma.Response(state, c)
	if err != nil {
		return nil, err
	}
	return wire.Serialize(commitment, response), nil
}

// Verify reports whether proof attests that g1, h1, g2, h2 share a common
// discrete log, bound to message.
func Verify(g1, h1, g2, h2 group.Element, message, proof []byte) bool {
	r, err := buildRelation(g1, h1, g2, h2)
	if err != nil {
		return false
	}
	defer r.Destroy()

	decoded, err := wire.Deserialize(proof, 2, 1)
	if err != nil {
		return false
	}
	response, err := wire.DecodeResponseScalars(decoded.Response)
	if err != nil {
		return false
	}
	c, err := common.DeriveChallenge(Label, publicInputs(g1, h1, g2, h2), decoded.Commitment, message)
	if err != nil {
		return false
	}
	return sigma.Verify(r, decoded.Commitment, c, response)
}
