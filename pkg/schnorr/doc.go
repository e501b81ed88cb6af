/*
Package schnorr is the canonical one-equation instantiation of the generic
engine: proof of knowledge of x such that Y = x*G, for the fixed base
generator G (spec section 4.7). It is the reference example the generic
relation, sigma, transcript and wire packages are built to make trivial to
express.

The public input is Y alone; G is implicit (the group's fixed generator)
and is not re-absorbed into the transcript, since every verifier already
knows it. A proof is 64 bytes: one commitment point, one response scalar.
*/
package schnorr
