/*
Package wire implements the bit-exact proof transcript format (spec
section 4.6): commitment[0..m) followed by response[0..n), each item
exactly 32 bytes, no length prefixes and no version byte.

Deserialize decodes every commitment slot as a canonical group element —
and fails the whole call if any slot is non-canonical — but copies response
scalar slots verbatim. The group primitive already guarantees a scalar
produced during a proof is canonical; whether bytes supplied by an
untrusted peer are a minimal residue is something the caller discovers the
moment it actually uses them (Verify), not at deserialization time.
*/
package wire

import (
	"errors"

	"github.com/anupsv/sigmaproofs/internal/common"
	"github.com/anupsv/sigmaproofs/pkg/group"
)

// ErrInvalidLength is returned when a byte string is not exactly
// 32*(m+n) bytes long.
var ErrInvalidLength = errors.New("wire: invalid proof length")

// ErrInvalidEncoding is returned when a commitment slot does not decode
// to a canonical Ristretto255 point.
var ErrInvalidEncoding = errors.New("wire: invalid point encoding")

// Proof is the decoded form of a transcript: m validated commitment
// points and n raw, as-yet-unvalidated 32-byte response scalar slots.
type Proof struct {
	Commitment []group.Element
	Response   [][]byte
}

// Size returns the exact byte length of a transcript for m commitment
// elements and n response scalars.
func Size(m, n int) int {
	return common.ProofSize(m, n)
}

// Serialize packs commitment and response into commitment || response,
// 32 bytes per item.
func Serialize(commitment []group.Element, response []group.Scalar) []byte {
	out := make([]byte, 0, Size(len(commitment), len(response)))
	for _, e := range commitment {
		out = append(out, e.Bytes()...)
	}
	for _, s := range response {
		out = append(out, s.Bytes()...)
	}
	return out
}

// Deserialize unpacks a transcript of exactly 32*(m+n) bytes: m
// commitment points (decoded and validated as canonical) followed by n
// raw 32-byte response slots.
func Deserialize(data []byte, m, n int) (*Proof, error) {
	if len(data) != Size(m, n) {
		return nil, ErrInvalidLength
	}

	commitment := make([]group.Element, m)
	for i := 0; i < m; i++ {
		off := i * common.ElementSize
		e, err := group.DecodeElement(data[off : off+common.ElementSize])
		if err != nil {
			return nil, ErrInvalidEncoding
		}
		commitment[i] = e
	}

	response := make([][]byte, n)
	base := m * common.ElementSize
	for i := 0; i < n; i++ {
		off := base + i*common.ScalarSize
		slot := make([]byte, common.ScalarSize)
		copy(slot, data[off:off+common.ScalarSize])
		response[i] = slot
	}

	return &Proof{Commitment: commitment, Response: response}, nil
}

// DecodeResponseScalars decodes every raw response slot as a canonical
// scalar. Call sites that need group.Scalar values for Verify use this
// after Deserialize; a non-canonical slot here is a verification failure,
// not a deserialization failure.
func DecodeResponseScalars(raw [][]byte) ([]group.Scalar, error) {
	out := make([]group.Scalar, len(raw))
	for i, b := range raw {
		s, err := group.DecodeScalar(b)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
