/*
Package sigma implements the three-move Sigma protocol state machine —
prover commit, prover response, verifier check — plus the zero-knowledge
simulator, generic over any [relation.Relation] (spec section 4.5):

	INIT --Commit--> AWAIT_CHALLENGE --Response--> DONE (state wiped)

Commit samples a fresh nonce per scalar, evaluates the relation's linear
map on the nonce vector to produce the commitment, and returns a
ProverState that owns the witness and nonce buffers. Response consumes
that state — it cannot be reused — and returns r[i] = k[i] + c*w[i]. Verify
recomputes both sides of the same equation the prover bound the witness to
and accepts iff they match in every row.

This package never derives its own challenge: Fiat-Shamir challenge
generation, including the transcript label and public-input ordering, is
the protocol wrapper's job (pkg/schnorr, pkg/dleq, pkg/pedersen). sigma
only consumes a challenge once computed.
*/
package sigma
