package dilithium

import (
	"time"

	"Dilithium-Signature/prof"
	"Dilithium-Signature/ringq"
)

// Verify reports whether sig binds message under pk. It never returns an
// error: malformed input and every rejection path alike produce false. A
// key pair on the Scheme is not required; only the parameter set is used.
//
// The check recomputes the challenge from the supplied commitment vector
// and compares it with the supplied c. The lattice relation
// A*z - c*t = w is never evaluated, so w is bound to (z, c) only through
// the challenge hash. That is exactly how the reference system behaves;
// tightening it to the textbook equation would change which signatures
// are accepted.
func (s *Scheme) Verify(message []byte, sig *Signature, pk *PublicKey) bool {
	defer prof.Track(time.Now(), "Verify")

	if sig == nil || pk == nil || sig.C == nil {
		return false
	}
	if vectorReaches(sig.Z, s.params.Gamma1-s.params.Beta) {
		return false
	}

	// Placeholder rounding, not the textbook high/low-bit decomposition:
	// every commitment coefficient becomes |coeff| mod Q. On canonical
	// storage this is the identity, but the challenge below is recomputed
	// over the processed vector, so the step stays explicit.
	wProcessed := make([]*ringq.Poly, len(sig.W))
	for i, p := range sig.W {
		q := &ringq.Poly{}
		for n, c := range p.Coeffs {
			q.Coeffs[n] = c % ringq.Q
		}
		wProcessed[i] = q
	}
	if vectorReaches(wProcessed, s.params.Gamma2) {
		return false
	}

	cPrime := s.hasher.Challenge(message, pk.Rho, wProcessed)
	return sig.C.Equal(cPrime)
}
