/*
Package relation implements the linear-relation data model the sigma
engine proves statements about: a sparse matrix M over the Ristretto255
group, together with the public image the witness is claimed to hit.

A Relation is built monotonically: allocate scalar and element variables,
fill in the concrete point value of every element variable, then append one
equation per row. Variable indices are stable once issued — there is no
deallocation of individual variables, only Destroy of the whole Relation.

Usage example, the Schnorr statement Y = x*G:

	r := relation.New()
	x := r.AllocateScalars(1)
	g := r.AllocateElements(2) // g, g+1 = G, Y
	_ = r.SetElement(g, group.GeneratorElement())
	_ = r.SetElement(g+1, y)
	_ = r.AddEquationSimple(y, x, g)

Eval computes M(s) for a scalar vector s; the sigma engine calls it twice,
once on the nonce vector during commit and once on the response vector
during verification, so both sides of the protocol share one code path.
*/
package relation
