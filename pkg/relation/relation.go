package relation

import "github.com/anupsv/sigmaproofs/pkg/group"

// Term is one (scalar_index, element_index) pair in a sparse row. Term
// order within a row defines evaluation order. Terms and equations are not
// absorbed into the Fiat-Shamir transcript themselves, but equation order
// fixes the order of the commitment points, which are — callers that care
// about a reproducible challenge must append equations in a fixed order.
type Term struct {
	ScalarIndex  int
	ElementIndex int
}

// LinearCombination is one row of the matrix M: an ordered, possibly
// duplicate-containing, list of terms that together define
// Σ s[σ]·E[ε] over the row's terms.
type LinearCombination struct {
	Terms []Term
}

// LinearMap is the public matrix M: num_scalars scalar variables,
// num_elements concrete point values, and num_constraints sparse rows.
type LinearMap struct {
	numScalars int
	elements   []group.Element
	elementSet []bool
	rows       []LinearCombination
}

// Relation pairs a LinearMap with the image points the witness is claimed
// to hit: image[i] == M(witness)[i] for every row i.
type Relation struct {
	Map   LinearMap
	Image []group.Element
}

// New returns an empty relation: zero scalars, zero elements, zero
// equations.
func New() *Relation {
	return &Relation{}
}

// NumScalars returns n, the number of allocated scalar variables.
func (m *LinearMap) NumScalars() int { return m.numScalars }

// NumElements returns e, the number of allocated element slots.
func (m *LinearMap) NumElements() int { return len(m.elements) }

// NumConstraints returns m, the number of appended equations.
func (m *LinearMap) NumConstraints() int { return len(m.rows) }

// AllocateScalars reserves k new scalar indices and returns the first.
func (r *Relation) AllocateScalars(k int) int {
	base := r.Map.numScalars
	r.Map.numScalars += k
	return base
}

// AllocateElements reserves k new element slots and returns the first.
// Every reserved slot must be filled with SetElement before the relation
// is used by Commit or Verify.
func (r *Relation) AllocateElements(k int) int {
	base := len(r.Map.elements)
	for i := 0; i < k; i++ {
		r.Map.elements = append(r.Map.elements, group.Element{})
		r.Map.elementSet = append(r.Map.elementSet, false)
	}
	return base
}

// SetElement stores the concrete point value for a previously allocated
// element index.
func (r *Relation) SetElement(index int, value group.Element) error {
	if index < 0 || index >= len(r.Map.elements) {
		return ErrInvalidRelation
	}
	r.Map.elements[index] = value
	r.Map.elementSet[index] = true
	return nil
}

// AddEquation appends a row: image is the target point for this equation,
// terms is the ordered list of (scalar_index, element_index) pairs that
// sum to it. At least one term is required.
func (r *Relation) AddEquation(image group.Element, terms []Term) error {
	if len(terms) == 0 {
		return ErrInvalidRelation
	}
	cp := make([]Term, len(terms))
	copy(cp, terms)
	for _, t := range cp {
		if t.ScalarIndex < 0 || t.ScalarIndex >= r.Map.numScalars {
			return ErrInvalidRelation
		}
		if t.ElementIndex < 0 || t.ElementIndex >= len(r.Map.elements) {
			return ErrInvalidRelation
		}
	}
	r.Map.rows = append(r.Map.rows, LinearCombination{Terms: cp})
	r.Image = append(r.Image, image)
	return nil
}

// AddEquationSimple appends a single-term row: image = scalar[scalarIdx] *
// element[elementIdx]. A thin convenience wrapper over AddEquation; it
// carries no additional semantics.
func (r *Relation) AddEquationSimple(image group.Element, scalarIdx, elementIdx int) error {
	return r.AddEquation(image, []Term{{ScalarIndex: scalarIdx, ElementIndex: elementIdx}})
}

// Destroy releases the relation's buffers. The element values and image
// are public, so Destroy simply drops references; it exists for symmetry
// with ProverState.Destroy and so callers have one consistent lifecycle
// idiom to follow.
func (r *Relation) Destroy() {
	r.Map.elements = nil
	r.Map.elementSet = nil
	r.Map.rows = nil
	r.Image = nil
}

// validate checks the invariant Eval (and so Commit, Verify and
// SimulateCommitment) requires: every allocated element slot has been
// filled. Relation.validate additionally checks that the image length
// matches the constraint count.
func (m *LinearMap) validate() error {
	for _, set := range m.elementSet {
		if !set {
			return ErrInvalidRelation
		}
	}
	return nil
}

func (r *Relation) validate() error {
	if err := r.Map.validate(); err != nil {
		return err
	}
	if len(r.Image) != len(r.Map.rows) {
		return ErrInvalidRelation
	}
	return nil
}
