package relation

import "github.com/anupsv/sigmaproofs/pkg/group"

// Eval computes the image of a scalar vector under the relation's linear
// map: for every row i with terms (σ1,ε1)...(σt,εt), result[i] =
// s[σ1]·E[ε1] + s[σ2]·E[ε2] + ... + s[σt]·E[εt].
//
// The engine calls Eval twice per proof — once on the nonce vector to
// produce the commitment, once on the response vector to check the
// verifier's equation — so both directions share this one code path and
// cannot silently diverge (spec section 4.4).
//
// Accumulation is a straight left fold: it never early-returns on an
// intermediate identity value, since the identity is a legal point and a
// row with one term that happens to vanish is not an error.
func Eval(m *LinearMap, s []group.Scalar) ([]group.Element, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if len(s) != m.numScalars {
		return nil, ErrInvalidRelation
	}

	out := make([]group.Element, len(m.rows))
	for i, row := range m.rows {
		if len(row.Terms) == 0 {
			return nil, ErrInvalidRelation
		}
		first := row.Terms[0]
		acc := group.ScalarMul(s[first.ScalarIndex], m.elements[first.ElementIndex])
		for _, t := range row.Terms[1:] {
			term := group.ScalarMul(s[t.ScalarIndex], m.elements[t.ElementIndex])
			acc = acc.Add(term)
		}
		out[i] = acc
	}
	return out, nil
}
