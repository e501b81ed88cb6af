package schnorr

import (
	"github.com/anupsv/sigmaproofs/internal/common"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
	"github.com/anupsv/sigmaproofs/pkg/sigma"
	"github.com/anupsv/sigmaproofs/pkg/wire"
)

// Label is the domain-separation string absorbed into the Fiat-Shamir
// transcript ahead of the public input.
const Label = common.LabelSchnorr

// buildRelation constructs the one-equation relation Y = x*G: scalar 0 is
// x, element 0 is G, element 1 is Y.
func buildRelation(y group.Element) (*relation.Relation, error) {
	r := relation.New()
	x := r.AllocateScalars(1)
	g := r.AllocateElements(2)
	if err := r.SetElement(g, group.GeneratorElement()); err != nil {
		return nil, err
	}
	if err := r.SetElement(g+1, y); err != nil {
		return nil, err
	}
	if err := r.AddEquationSimple(y, x, g); err != nil {
		return nil, err
	}
	return r, nil
}

// Prove produces a proof that the caller knows x such that y = x*G,
// binding message into the transcript. message may be nil.
func Prove(x group.Scalar, y group.Element, message []byte) ([]byte, error) {
	r, err := buildRelation(y)
	if err != nil {
		return nil, err
	}
	defer r.Destroy()

	commitment, state, err := sigma.Commit(r, []group.Scalar{x})
	if err != nil {
		return nil, err
	}
	c, err := common.DeriveChallenge(Label, []group.Element{y}, commitment, message)
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

// Verify reports whether proof is a valid Schnorr proof of knowledge of the
// discrete log of y base G, bound to message.
func Verify(y group.Element, message, proof []byte) bool {
	r, err := buildRelation(y)
	if err != nil {
		return false
	}
	defer r.Destroy()

	decoded, err := wire.Deserialize(proof, 1, 1)
	if err != nil {
		return false
	}
	response, err := wire.DecodeResponseScalars(decoded.Response)
	if err != nil {
		return false
	}
	c, err := common.DeriveChallenge(Label, []group.Element{y}, decoded.Commitment, message)
	if err != nil {
		return false
	}
	return sigma.Verify(r, decoded.Commitment, c, response)
}
