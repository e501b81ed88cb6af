package wire

import (
	"bytes"
	"testing"

	"github.com/anupsv/sigmaproofs/pkg/group"
)

func randElement(t *testing.T) group.Element {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return group.ScalarBaseMul(s)
}

func randScalar(t *testing.T) group.Scalar {
	t.Helper()
	s, err := group.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	cases := []struct{ m, n int }{{1, 1}, {2, 1}, {1, 2}}
	wantSize := []int{64, 96, 96}

	for i, c := range cases {
		commitment := make([]group.Element, c.m)
		for j := range commitment {
			commitment[j] = randElement(t)
		}
		response := make([]group.Scalar, c.n)
		for j := range response {
			response[j] = randScalar(t)
		}

		data := Serialize(commitment, response)
		if len(data) != wantSize[i] {
			t.Fatalf("case %d: size = %d, want %d", i, len(data), wantSize[i])
		}
		if got := Size(c.m, c.n); got != wantSize[i] {
			t.Fatalf("case %d: Size() = %d, want %d", i, got, wantSize[i])
		}

		proof, err := Deserialize(data, c.m, c.n)
		if err != nil {
			t.Fatalf("case %d: Deserialize: %v", i, err)
		}
		for j, e := range proof.Commitment {
			if !e.Equal(commitment[j]) {
				t.Fatalf("case %d: commitment[%d] mismatch", i, j)
			}
		}
		decoded, err := DecodeResponseScalars(proof.Response)
		if err != nil {
			t.Fatalf("case %d: DecodeResponseScalars: %v", i, err)
		}
		for j, s := range decoded {
			if !s.Equal(response[j]) {
				t.Fatalf("case %d: response[%d] mismatch", i, j)
			}
		}

		roundTripped := Serialize(proof.Commitment, decoded)
		if !bytes.Equal(roundTripped, data) {
			t.Fatalf("case %d: re-serialized bytes differ", i)
		}
	}
}

func TestDeserializeRejectsBadLength(t *testing.T) {
	if _, err := Deserialize(make([]byte, 10), 2, 3); err != ErrInvalidLength {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestDeserializeRejectsNonCanonicalPoint(t *testing.T) {
	data := make([]byte, Size(1, 1))
	for i := range data[:32] {
		data[i] = 0xff
	}
	if _, err := Deserialize(data, 1, 1); err != ErrInvalidEncoding {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestDeserializePassesNonCanonicalScalarThrough(t *testing.T) {
	data := make([]byte, Size(0, 1))
	for i := range data {
		data[i] = 0xff
	}
	proof, err := Deserialize(data, 0, 1)
	if err != nil {
		t.Fatalf("Deserialize should not validate scalar slots: %v", err)
	}
	if _, err := DecodeResponseScalars(proof.Response); err == nil {
		t.Fatalf("expected non-canonical scalar to fail on use")
	}
}
