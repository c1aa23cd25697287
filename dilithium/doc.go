// Package dilithium implements the key generation, signing and
// verification protocol of a Dilithium-family lattice signature scheme on
// top of the ringq arithmetic and the xof expansion engine.
//
// The instantiation is deliberately relaxed: gamma1 = gamma2 = Q and
// beta = 1, so the rejection-sampling windows are near-vacuous, and the
// verifier only recomputes the challenge from the supplied commitment
// rather than checking the lattice relation A*z - c*t against it. Both
// choices are part of the scheme this module reproduces and are load
// bearing for its accept/reject behaviour.
//
// A Scheme holds at most one active key pair and is not safe for
// concurrent use.
package dilithium
