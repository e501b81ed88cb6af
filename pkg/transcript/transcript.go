// Package transcript wraps the SHAKE128 extendable-output function used to
// derive Fiat-Shamir challenges (spec section 4.2). It is a thin absorb/
// squeeze sponge interface over golang.org/x/crypto/sha3, whose SHAKE128
// implementation already uses the rate-168-byte, domain-separator-0x1F
// Keccak sponge the spec calls for.
package transcript

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

// ErrAlreadySqueezing is returned by Absorb once Finalize has been called;
// the sponge does not support resuming the absorb phase after squeezing.
var ErrAlreadySqueezing = errors.New("transcript: absorb after finalize")

// ErrNotFinalized is returned by Squeeze before Finalize has been called.
var ErrNotFinalized = errors.New("transcript: squeeze before finalize")

// Transcript is a single-use SHAKE128 sponge: absorb zero or more byte
// strings, Finalize once, then Squeeze any number of output bytes.
type Transcript struct {
	h         sha3.ShakeHash
	squeezing bool
}

// New returns an empty transcript ready to absorb.
func New() *Transcript {
	return &Transcript{h: sha3.NewShake128()}
}

// Absorb writes b into the sponge. It fails if Finalize has already been
// called.
func (t *Transcript) Absorb(b []byte) error {
	if t.squeezing {
		return ErrAlreadySqueezing
	}
	_, _ = t.h.Write(b)
	return nil
}

// Finalize ends the absorb phase. Absorb may not be called again.
func (t *Transcript) Finalize() {
	t.squeezing = true
}

// Squeeze reads n bytes of output. Finalize must have been called first.
// Repeated calls continue reading from the same unbounded output stream.
func (t *Transcript) Squeeze(n int) ([]byte, error) {
	if !t.squeezing {
		return nil, ErrNotFinalized
	}
	out := make([]byte, n)
	_, _ = t.h.Read(out)
	return out, nil
}
