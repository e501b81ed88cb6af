package pedersen

import (
	"github.com/anupsv/sigmaproofs/internal/common"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
	"github.com/anupsv/sigmaproofs/pkg/sigma"
	"github.com/anupsv/sigmaproofs/pkg/wire"
)

// Label is the canonical Fiat-Shamir domain-separation string, matching
// the original implementation's "pedersen_repr" exactly (it names the
// relation being proved, not the commitment scheme, and needed no
// canonicalization).
const Label = common.LabelPedersen

// Commit computes C = x*G + r*H, the commitment an opening proof is later
// produced against.
func Commit(x, r group.Scalar, g, h group.Element) group.Element {
	return group.ScalarMul(x, g).Add(group.ScalarMul(r, h))
}

// buildRelation constructs the single two-term equation C = x*G + r*H:
// scalar 0 is x, scalar 1 is r, elements 0..2 are G, H, C in that order —
// also the order they are absorbed into the transcript as public input.
func buildRelation(g, h, c group.Element) (*relation.Relation, error) {
	r := relation.New()
	x := r.AllocateScalars(1)
	blind := r.AllocateScalars(1)
	e := r.AllocateElements(3)
	if err := r.SetElement(e, g); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+1, h); err != nil {
		return nil, err
	}
	if err := r.SetElement(e+2, c); err != nil {
		return nil, err
	}
	terms := []relation.Term{
		{ScalarIndex: x, ElementIndex: e},
		{ScalarIndex: blind, ElementIndex: e + 1},
	}
	if err := r.AddEquation(c, terms); err != nil {
		return nil, err
	}
	return r, nil
}

func publicInputs(g, h, c group.Element) []group.Element {
	return []group.Element{g, h, c}
}

// Prove produces a proof that the caller knows (x, r) opening commitment c
// over bases g, h, binding message into the transcript. message may be
// nil.
func Prove(x, r group.Scalar, g, h, c group.Element, message []byte) ([]byte, error) {
	rel, err := buildRelation(g, h, c)
	if err != nil {
		return nil, err
	}
	defer rel.Destroy()

	commitment, state, err := sigma.Commit(rel, []group.Scalar{x, r})
	if err != nil {
		return nil, err
	}
	chal, err := common.DeriveChallenge(Label, publicInputs(g, h, c), commitment, message)
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

// Verify reports whether proof attests to knowledge of an opening of c
// over bases g, h, bound to message.
func Verify(g, h, c group.Element, message, proof []byte) bool {
	rel, err := buildRelation(g, h, c)
	if err != nil {
		return false
	}
	defer rel.Destroy()

	decoded, err := wire.Deserialize(proof, 1, 2)
	if err != nil {
		return false
	}
	response, err := wire.DecodeResponseScalars(decoded.Response)
	if err != nil {
		return false
	}
	chal, err := common.DeriveChallenge(Label, publicInputs(g, h, c), decoded.Commitment, message)
	if err != nil {
		return false
	}
	return sigma.Verify(rel, decoded.Commitment, chal, response)
}
