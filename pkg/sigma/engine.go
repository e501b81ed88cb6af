package sigma

import (
	"fmt"

	"github.com/anupsv/sigmaproofs/internal/secure"
	"github.com/anupsv/sigmaproofs/pkg/group"
	"github.com/anupsv/sigmaproofs/pkg/relation"
)

// ProverState is the transient secret state of one proof: the witness and
// nonce vectors, held as raw 32-byte-per-scalar buffers so Destroy can wipe
// them directly. It lives only between Commit and Response and is
// consumed by Response — a second call on the same state fails.
type ProverState struct {
	witness []byte // n * 32 bytes
	nonces  []byte // n * 32 bytes
	n       int
	done    bool
}

// Destroy zeroes the witness and nonce buffers. Response calls it on every
// exit path, and Commit returns no ProverState on failure; callers that
// abandon a ProverState without
// calling Response (for example, after deciding not to complete a proof)
// must call it themselves.
func (ps *ProverState) Destroy() {
	if ps == nil {
		return
	}
	secure.PutBuffer(ps.witness)
	secure.PutBuffer(ps.nonces)
	ps.witness = nil
	ps.nonces = nil
	ps.done = true
}

// scalarsToBytes flattens s into a pooled buffer, BufferSize scalars of
// which are reused across calls instead of allocated fresh every Commit.
func scalarsToBytes(s []group.Scalar) []byte {
	out := secure.GetBuffer(len(s) * group.EncodedSize)
	for i, v := range s {
		copy(out[i*group.EncodedSize:(i+1)*group.EncodedSize], v.Bytes())
	}
	return out
}

func bytesToScalars(b []byte, n int) ([]group.Scalar, error) {
	if len(b) != n*group.EncodedSize {
		return nil, ErrWitnessLength
	}
	out := make([]group.Scalar, n)
	for i := 0; i < n; i++ {
		s, err := group.DecodeScalar(b[i*group.EncodedSize : (i+1)*group.EncodedSize])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Commit is the prover's first move. witness must have exactly
// relation.Map.NumScalars() entries. It samples fresh nonces, evaluates
// the relation's map on them to produce the commitment, and returns a
// ProverState for the response step.
//
// On any failure the returned ProverState is nil and any secret material
// already copied is wiped before returning.
func Commit(r *relation.Relation, witness []group.Scalar) ([]group.Element, *ProverState, error) {
	n := r.Map.NumScalars()
	if len(witness) != n {
		return nil, nil, ErrWitnessLength
	}

	nonces := make([]group.Scalar, n)
	for i := range nonces {
		s, err := group.RandomScalar()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		nonces[i] = s
	}

	commitment, err := relation.Eval(&r.Map, nonces)
	if err != nil {
		secure.PutBuffer(scalarsToBytes(nonces))
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRelation, err)
	}

	state := &ProverState{
		witness: scalarsToBytes(witness),
		nonces:  scalarsToBytes(nonces),
		n:       n,
	}
	return commitment, state, nil
}

// Response is the prover's second move: r[i] = k[i] + c*w[i] mod l. It
// consumes state — the secret buffers are wiped before returning,
// regardless of outcome — so a ProverState can only ever produce one
// response.
func Response(state *ProverState, challenge group.Scalar) ([]group.Scalar, error) {
	if state == nil || state.done {
		return nil, ErrStateConsumed
	}
	defer state.Destroy()

	w, err := bytesToScalars(state.witness, state.n)
	if err != nil {
		return nil, err
	}
	k, err := bytesToScalars(state.nonces, state.n)
	if err != nil {
		return nil, err
	}

	resp := make([]group.Scalar, state.n)
	for i := range resp {
		resp[i] = k[i].Add(challenge.Mul(w[i]))
	}
	return resp, nil
}

// Verify checks a (commitment, challenge, response) transcript against a
// relation: it recomputes LHS = M(response) and, per row, RHS_i =
// commitment_i + challenge*image_i, and accepts iff every row matches.
//
// Any structural defect in the relation or a length mismatch between the
// supplied vectors and the relation yields false — Verify never panics on
// malformed input, and it checks every row before returning so it leaks no
// timing signal about which row (if any) failed.
func Verify(r *relation.Relation, commitment []group.Element, challenge group.Scalar, response []group.Scalar) bool {
	m := r.Map.NumConstraints()
	if len(commitment) != m || len(response) != r.Map.NumScalars() || len(r.Image) != m {
		return false
	}

	lhs, err := relation.Eval(&r.Map, response)
	if err != nil {
		return false
	}

	ok := true
	for i := 0; i < m; i++ {
		rhs := commitment[i].Add(group.ScalarMul(challenge, r.Image[i]))
		if !lhs[i].Equal(rhs) {
			ok = false
		}
	}
	return ok
}

// SimulateResponse draws a response vector uniformly at random, for use
// with SimulateCommitment to produce a transcript indistinguishable from a
// real one for a chosen challenge, without knowledge of the witness.
func SimulateResponse(n int) ([]group.Scalar, error) {
	out := make([]group.Scalar, n)
	for i := range out {
		s, err := group.RandomScalar()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		out[i] = s
	}
	return out, nil
}

// SimulateCommitment computes T = M(response) - challenge*image
// componentwise, completing the simulator: given any challenge and any
// response, it produces a commitment that makes the transcript verify.
func SimulateCommitment(r *relation.Relation, challenge group.Scalar, response []group.Scalar) ([]group.Element, error) {
	lhs, err := relation.Eval(&r.Map, response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRelation, err)
	}
	if len(r.Image) != len(lhs) {
		return nil, ErrInvalidRelation
	}
	out := make([]group.Element, len(lhs))
	for i := range lhs {
		out[i] = lhs[i].Sub(group.ScalarMul(challenge, r.Image[i]))
	}
	return out, nil
}
