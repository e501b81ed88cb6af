package relation

import "errors"

// ErrInvalidRelation covers every structural defect in a Relation: an
// out-of-range variable index, an equation with zero terms, an
// unpopulated element slot, or image/constraint count mismatches. These
// are programmer errors, not protocol outcomes (spec section 7).
var ErrInvalidRelation = errors.New("relation: invalid relation")
