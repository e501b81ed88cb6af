// Package compat re-exports pkg/dleq under the name the original C
// implementation (jedisct1/c-sigma) used for the same relation:
// "chaum-pedersen" rather than "dleq".
//
// This is a naming convenience only. The wire label absorbed into the
// Fiat-Shamir transcript is always pkg/dleq.Label ("dleq") regardless of
// which Go name a caller used to reach it — a proof produced through
// ProveChaumPedersen verifies against dleq.Verify and vice versa. Callers
// migrating code that spoke of "Chaum-Pedersen proofs" can import this
// package instead of renaming call sites; new code should prefer pkg/dleq
// directly.
package compat
