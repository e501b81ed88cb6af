package common

import (
	"fmt"

	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/transcript"
)

// DeriveChallenge implements the Fiat-Shamir derivation shared by every
// protocol wrapper (spec section 4.5.4):
//
//	c = scalar_reduce(SHAKE128(label || publicInputs || commitment || message)[:64])
//
// label is absorbed verbatim, with no length prefix. publicInputs is the
// concatenation, in the protocol's fixed canonical order, of every public
// element encoding that parameterizes the relation. commitment is the
// concatenation of the row-ordered commitment points. message is absorbed
// only if non-empty, so a nil message and an explicit zero-length message
// produce the same challenge.
func DeriveChallenge(label string, publicInputs []group.Element, commitment []group.Element, message []byte) (group.Scalar, error) {
	tr := transcript.New()
	if err := tr.Absorb([]byte(label)); err != nil {
		return group.Scalar{}, err
	}
	for _, e := range publicInputs {
		if err := tr.Absorb(e.Bytes()); err != nil {
			return group.Scalar{}, err
		}
	}
	for _, e := range commitment {
		if err := tr.Absorb(e.Bytes()); err != nil {
			return group.Scalar{}, err
		}
	}
	if len(message) > 0 {
		if err := tr.Absorb(message); err != nil {
			return group.Scalar{}, err
		}
	}
	tr.Finalize()

	wide, err := tr.Squeeze(ChallengeBytes)
	if err != nil {
		return group.Scalar{}, err
	}
	c, err := group.ScalarFromWideBytes(wide)
	if err != nil {
		return group.Scalar{}, fmt.Errorf("challenge: %w", err)
	}
	return c, nil
}
