package secure

import "testing"

func TestGetBufferLength(t *testing.T) {
	b := GetBuffer(48)
	if len(b) != 48 {
		t.Fatalf("len = %d, want 48", len(b))
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
}

func TestGetBufferPastPooledCapacity(t *testing.T) {
	b := GetBuffer(BufferSize*32 + 1)
	if len(b) != BufferSize*32+1 {
		t.Fatalf("len = %d, want %d", len(b), BufferSize*32+1)
	}
}

func TestPutBufferWipesInPlace(t *testing.T) {
	b := GetBuffer(32)
	for i := range b {
		b[i] = 0xff
	}
	orig := b
	PutBuffer(b)

	for i, v := range orig {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0 after PutBuffer wiped it", i, v)
		}
	}
}

func TestPutBufferAcceptsNil(t *testing.T) {
	PutBuffer(nil)
}
