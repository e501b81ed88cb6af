/*
Package pedersen proves knowledge of an opening (x, r) of a commitment
C = x*G + r*H, for two independent, nothing-up-my-sleeve bases G and H
(spec section 4.7, mirroring the original pedersen_build_relation). Unlike
schnorr and dleq it has two scalar variables folded into a single
two-term equation, exercising the generic engine's multi-term row
support.

Commit is provided directly alongside Prove/Verify, since an opening
proof is only useful paired with the commitment it was computed over. A
proof is 96 bytes: one commitment point, two response scalars.
*/
package pedersen
