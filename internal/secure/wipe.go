// Package secure provides the scoped-acquisition helpers that keep witness
// and nonce buffers from outliving a single proof.
//
// It is used by [github.com/anupsv/sigmaproofs/pkg/sigma] to allocate and
// zero the secret scalar slices held by a ProverState on every exit path,
// including the error paths out of Commit and the one guaranteed exit out
// of Response. This is an internal package not intended for direct use by
// applications.
package secure

// Wipe overwrites every byte of b with zero. It is the caller's
// responsibility to ensure no other reference to the underlying array
// survives the call.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
