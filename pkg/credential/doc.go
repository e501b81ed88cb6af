// Package credential demonstrates composing two Sigma relations into one
// proof over a shared secret: an attribute x is hidden inside a Pedersen
// commitment C = x*G + r*H and simultaneously bound to a public key
// Y = x*G, without ever revealing x.
//
// This is the composite use case the generic engine exists for (spec
// section 4.4's rationale): rather than two separate proofs that happen to
// use the same x, the Builder assembles one two-equation relation and
// proves it as a single Sigma protocol, so a verifier learns the two
// statements share a witness as a structural property of the transcript,
// not as an assumption the caller has to trust.
//
// Example usage:
//
//	stmt, err := credential.NewBuilder().
//	        SetBases(g, h).
//	        SetAttribute(x, r).
//	        Build()
//	proof, err := stmt.Prove(message)
//
//	ok := credential.NewVerifier().
//	        SetBases(g, h).
//	        SetCommitment(stmt.Commitment()).
//	        SetPublicKey(stmt.PublicKey()).
//	        Verify(message, proof)
package credential
