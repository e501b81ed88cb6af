// Package common holds constants shared across the sigma protocol packages:
// wire sizes and the Fiat-Shamir labels for the protocol wrappers.
package common

// ScalarSize and ElementSize are the canonical encoded length, in bytes, of
// a Ristretto255 scalar and group element respectively.
const (
	ScalarSize  = 32
	ElementSize = 32
)

// ChallengeBytes is the number of bytes squeezed from the transcript before
// wide reduction into a scalar (spec section 4.5.4).
const ChallengeBytes = 64

// Fiat-Shamir labels. These are absorbed into the transcript verbatim, with
// no length prefix and no trailing NUL. Changing any of them is a wire
// format break: a proof produced under one label does not verify under
// another, even for an otherwise identical relation.
const (
	LabelSchnorr  = "schnorr"
	LabelDLEQ     = "dleq"
	LabelPedersen = "pedersen_repr"

	// LabelLinkedAttribute is the composite relation used by pkg/credential:
	// a Pedersen commitment and a Schnorr public key proved to share the
	// same hidden attribute scalar.
	LabelLinkedAttribute = "linked-attribute-v1"
)

// ProofSize returns the exact byte length of a transcript for m commitment
// elements and n response scalars.
func ProofSize(m, n int) int {
	return m*ElementSize + n*ScalarSize
}
