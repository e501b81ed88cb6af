package credential

import (
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/sigma"
	"github.com/anupsv/sigmaproofs/pkg/wire"
)

// Verifier checks a linked attribute proof against a commitment and
// public key a verifier already possesses out of band.
type Verifier struct {
	g, h     group.Element
	c, y     group.Element
	hasBases bool
	hasC     bool
	hasY     bool
}

// NewVerifier returns an empty Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// SetBases sets the Pedersen/Schnorr bases G, H.
func (v *Verifier) SetBases(g, h group.Element) *Verifier {
	v.g, v.h = g, h
	v.hasBases = true
	return v
}

// SetCommitment sets the commitment C the proof must be bound to.
func (v *Verifier) SetCommitment(c group.Element) *Verifier {
	v.c = c
	v.hasC = true
	return v
}

// SetPublicKey sets the public key Y the proof must be bound to.
func (v *Verifier) SetPublicKey(y group.Element) *Verifier {
	v.y = y
	v.hasY = true
	return v
}

// Verify reports whether proof attests that C and Y share a hidden
// attribute, bound to message. It returns false (never panics) if the
// Verifier was not fully configured or the proof is malformed.
func (v *Verifier) Verify(message, proof []byte) bool {
	if !v.hasBases || !v.hasC || !v.hasY {
		return false
	}
	rel, err := buildRelation(v.g, v.h, v.c, v.y)
	if err != nil {
		return false
	}
	defer rel.Destroy()

	decoded, err := wire.Deserialize(proof, 2, 2)
	if err != nil {
		return false
	}
	response, err := wire.DecodeResponseScalars(decoded.Response)
	if err != nil {
		return false
	}
	chal, err := deriveVerifierChallenge(v, decoded, message)
	if err != nil {
		return false
	}
	return sigma.Verify(rel, decoded.Commitment, chal, response)
}

func deriveVerifierChallenge(v *Verifier, decoded *wire.Proof, message []byte) (group.Scalar, error) {
	return deriveChallenge(v.g, v.h, v.c, v.y, decoded.Commitment, message)
}
