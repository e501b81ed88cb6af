package sigma

import "errors"

// ErrInvalidRelation is returned when the supplied relation fails its
// structural invariants (empty row, unset element, bad image length) —
// always a programmer error, never a proof outcome.
var ErrInvalidRelation = errors.New("sigma: invalid relation")

// ErrWitnessLength is returned when the witness vector's length does not
// match the relation's scalar count.
var ErrWitnessLength = errors.New("sigma: witness length mismatch")

// ErrRandomSource is returned when nonce sampling fails; fatal for the
// proof in progress.
var ErrRandomSource = errors.New("sigma: random source failed")

// ErrStateConsumed is returned if Response is called twice on the same
// ProverState: the response step consumes it.
var ErrStateConsumed = errors.New("sigma: prover state already consumed")
