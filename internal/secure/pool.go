package secure

import "sync"

// BufferSize is the default capacity, in scalars, reserved by pooled
// buffers. Relations with more scalars than this simply allocate past it.
const BufferSize = 16

// bufPool recycles the flat byte-slice backing arrays used for witness and
// nonce vectors, the two secret buffers a ProverState owns. pkg/sigma's
// scalarsToBytes draws from it on every Commit and ProverState.Destroy
// returns the buffers after wiping them, so the arrays are reused across
// proofs instead of allocated and garbage-collected one per proof.
var bufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, BufferSize*32)
		return &buf
	},
}

// GetBuffer returns a zeroed byte slice of length n, reusing pooled
// capacity when available.
func GetBuffer(n int) []byte {
	p := bufPool.Get().(*[]byte)
	buf := *p
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
		Wipe(buf)
	}
	return buf
}

// PutBuffer wipes b and returns its backing array to the pool. Callers must
// not use b after calling PutBuffer.
func PutBuffer(b []byte) {
	Wipe(b)
	b = b[:0]
	bufPool.Put(&b)
}
