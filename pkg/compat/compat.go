package compat

import (
	"github.com/anupsv/sigmaproofs/pkg/dleq"
	"github.com/anupsv/sigmaproofs/pkg/group"
)

// ChaumPedersenLabel is the historical name for dleq.Label, exported so
// callers that log or display the protocol name can match the original
// implementation's terminology without re-deriving a challenge under it.
const ChaumPedersenLabel = dleq.Label

// ProveChaumPedersen is ProveDLEQ by another name: proves that h1 = x*g1
// and h2 = x*g2 for the same x.
func ProveChaumPedersen(x group.Scalar, g1, h1, g2, h2 group.Element, message []byte) ([]byte, error) {
	return dleq.Prove(x, g1, h1, g2, h2, message)
}

// VerifyChaumPedersen is VerifyDLEQ by another name.
func VerifyChaumPedersen(g1, h1, g2, h2 group.Element, message, proof []byte) bool {
	return dleq.Verify(g1, h1, g2, h2, message, proof)
}
