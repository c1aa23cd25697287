package dilithium

import (
	"fmt"
	"time"

	"Dilithium-Signature/measure"
	"Dilithium-Signature/prof"
	"Dilithium-Signature/ringq"
	"Dilithium-Signature/xof"
)

// Sign runs the Fiat-Shamir-with-aborts loop for up to maxAttempts
// rounds. Each round draws a fresh mask vector y, commits to w = A*y,
// derives the challenge c from (message, rho, w) and responds with
// z = y + c*s1. A round aborts when w or z falls outside its bound
// window; aborting instead of publishing keeps z from leaking the
// statistics of s1. Exhausting maxAttempts returns ErrMaxAttempts, so
// Sign(message, 0) always fails.
func (s *Scheme) Sign(message []byte, maxAttempts int) (*Signature, error) {
	defer prof.Track(time.Now(), "Sign")

	if s.rho == nil || s.t == nil || s.s1 == nil || s.s2 == nil {
		return nil, ErrNoKeyPair
	}
	a := s.hasher.Matrix(s.rho, s.params.K, s.params.L)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		y, err := s.sampleBoundedVector(s.params.L, s.params.Gamma1, xof.DomainMask)
		if err != nil {
			return nil, err
		}
		w := matVecMul(a, y)
		if vectorExceeds(w, s.params.Gamma2) {
			continue
		}

		c := s.hasher.Challenge(message, s.rho, w)

		z := make([]*ringq.Poly, s.params.L)
		for i := range z {
			z[i] = ringq.Add(y[i], mulPoly(c, s.s1[i]))
		}
		if vectorReaches(z, s.params.Gamma1-s.params.Beta) {
			continue
		}

		measure.Global.Add("dilithium/sign/attempts", int64(attempt))
		measure.Global.Add("dilithium/sign/signature_coeffs", int64(len(z)+len(w)+1)*ringq.N)
		return &Signature{Z: z, C: c, W: w}, nil
	}
	return nil, fmt.Errorf("%w (%d attempts)", ErrMaxAttempts, maxAttempts)
}

// Coefficients are canonical in [0, Q), so the stored word is already the
// magnitude the bound windows are measured against.

// vectorExceeds reports whether any coefficient is strictly above bound.
func vectorExceeds(v []*ringq.Poly, bound uint32) bool {
	for _, p := range v {
		for _, c := range p.Coeffs {
			if c > bound {
				return true
			}
		}
	}
	return false
}

// vectorReaches reports whether any coefficient is at or above bound.
func vectorReaches(v []*ringq.Poly, bound uint32) bool {
	for _, p := range v {
		for _, c := range p.Coeffs {
			if c >= bound {
				return true
			}
		}
	}
	return false
}
