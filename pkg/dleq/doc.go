/*
Package dleq proves knowledge of x such that h1 = x*g1 and h2 = x*g2 for
two independent bases g1, g2 — discrete-log equality, also known as a
Chaum-Pedersen proof (spec section 4.7 and the Open Question it records:
the original construction's label is "chaum-pedersen"; this package uses
the canonical wire label "dleq" and leaves the historical name to
pkg/compat).

The relation has one scalar variable shared across two equations, so
Commit draws a single nonce k and the engine's generic left-fold handles
both rows without any protocol-specific code. A proof is 96 bytes: two
commitment points, one response scalar.
*/
package dleq
